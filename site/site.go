package site

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"

	"versehub/models"
)

// SiteModule serves the public pages the app stores link to: the landing
// page and the legal texts, kept as markdown under site/resources.
type SiteModule struct {
	db *gorm.DB
}

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
)

func NewSiteModule(db *gorm.DB) *SiteModule {
	return &SiteModule{db: db}
}

func (s *SiteModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/", s.index)
	router.GET("/termos", s.legalPage("Termos de Uso", "termos.md"))
	router.GET("/privacidade", s.legalPage("Política de Privacidade", "privacidade.md"))
	router.GET("/excluir-conta", s.legalPage("Exclusão de Conta", "excluir-conta.md"))
}

func (s *SiteModule) index(c *gin.Context) {
	var verseCount, classificationCount int64
	if err := s.db.Model(&models.BibleVerse{}).Count(&verseCount).Error; err != nil {
		log.Println("erro ao contar versículos:", err)
	}
	if err := s.db.Model(&models.VerseClassification{}).Count(&classificationCount).Error; err != nil {
		log.Println("erro ao contar classificações:", err)
	}

	c.HTML(http.StatusOK, "site_index.html", gin.H{
		"verseCount":          verseCount,
		"classificationCount": classificationCount,
	})
}

func (s *SiteModule) legalPage(title, file string) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := os.ReadFile(filepath.Join("site", "resources", file))
		if err != nil {
			log.Println("erro ao ler página legal:", err)
			c.String(http.StatusNotFound, "Página não encontrada")
			return
		}

		c.HTML(http.StatusOK, "site_legal.html", gin.H{
			"title":   title,
			"content": template.HTML(renderMarkdown(string(content))),
		})
	}
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		// Em caso de erro, retorna o conteúdo original para não quebrar a página
		return content
	}
	return buf.String()
}
