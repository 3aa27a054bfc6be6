package bible

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"versehub/auth"
	"versehub/models"
)

// BibleModule serves the reading API on top of the upstream client plus the
// locally seeded version catalog.
type BibleModule struct {
	db     *gorm.DB
	client *Client
	auth   *auth.AuthModule
}

func NewBibleModule(db *gorm.DB, client *Client, authModule *auth.AuthModule) *BibleModule {
	return &BibleModule{db: db, client: client, auth: authModule}
}

func (m *BibleModule) RegisterRoutes(router *gin.Engine) {
	reading := router.Group("/api/bible")
	reading.GET("/versions", m.getVersions)
	reading.GET("/:version/random", m.getRandom)
	reading.GET("/:version/search", m.search)
	reading.GET("/:version/:book/info", m.getBookInfo)
	reading.GET("/:version/:book/:chapter", m.getChapter)
	reading.GET("/:version/:book/:chapter/:verses", m.getVerseRange)

	m.registerVersionRoutes(router)
}

// getVersions lists the seeded versions, not the upstream's.
func (m *BibleModule) getVersions(c *gin.Context) {
	var versions []models.BibleVersion
	if err := m.db.Order("language").Order("name").Find(&versions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar versões"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    versions,
		"message": "Versões recuperadas com sucesso",
		"meta": gin.H{
			"count": len(versions),
		},
	})
}

// getChapter returns every verse of a chapter.
// GET /api/bible/:version/:book/:chapter
func (m *BibleModule) getChapter(c *gin.Context) {
	version := c.Param("version")
	book := c.Param("book")
	chapter, err := strconv.Atoi(c.Param("chapter"))
	if err != nil || chapter < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Capítulo inválido"})
		return
	}

	data, err := m.client.GetChapter(version, book, chapter)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Capítulo não encontrado",
			"error":   "Não foi possível recuperar o capítulo",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    data,
		"message": "Capítulo recuperado com sucesso",
		"meta": gin.H{
			"version":     version,
			"book":        book,
			"chapter":     chapter,
			"verse_count": len(data.Verses),
		},
	})
}

// getVerseRange returns a single verse ("16") or an inclusive range ("3-10").
// GET /api/bible/:version/:book/:chapter/:verses
func (m *BibleModule) getVerseRange(c *gin.Context) {
	version := c.Param("version")
	book := c.Param("book")
	chapter, err := strconv.Atoi(c.Param("chapter"))
	if err != nil || chapter < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Capítulo inválido"})
		return
	}

	verseStart, verseEnd, err := parseVerseRange(c.Param("verses"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Intervalo de versículos inválido",
			"error":   err.Error(),
		})
		return
	}

	data, err := m.client.GetVerses(version, book, chapter, verseStart, verseEnd)
	if err != nil || len(data.Verses) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Versículo(s) não encontrado(s)",
			"error":   "Não foi possível recuperar os versículos",
		})
		return
	}

	verseRange := strconv.Itoa(verseStart)
	if verseEnd != nil {
		verseRange = verseRange + "-" + strconv.Itoa(*verseEnd)
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    data,
		"message": "Versículo(s) recuperado(s) com sucesso",
		"meta": gin.H{
			"version":     version,
			"book":        book,
			"chapter":     chapter,
			"verse_range": verseRange,
			"verse_count": len(data.Verses),
		},
	})
}

// getRandom returns a random verse straight from the upstream.
// GET /api/bible/:version/random
func (m *BibleModule) getRandom(c *gin.Context) {
	version := c.Param("version")

	data, err := m.client.GetRandomVerse(version)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Não foi possível recuperar o versículo aleatório",
			"error":   "Erro na API ou versão não encontrada",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    data,
		"message": "Versículo aleatório recuperado com sucesso",
		"meta": gin.H{
			"version": version,
		},
	})
}

// search filters a chapter's verses by a text query.
// GET /api/bible/:version/search?book=pv&chapter=1&q=sabedoria
func (m *BibleModule) search(c *gin.Context) {
	version := c.Param("version")
	book := c.Query("book")
	chapterRaw := c.Query("chapter")
	query := c.Query("q")

	if book == "" || chapterRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Informe ao menos os parâmetros book e chapter",
			"error":   "Parâmetros de busca insuficientes",
		})
		return
	}
	chapter, err := strconv.Atoi(chapterRaw)
	if err != nil || chapter < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "chapter inválido"})
		return
	}

	data, err := m.client.GetChapter(version, book, chapter)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Capítulo não encontrado",
			"error":   "Não foi possível recuperar o capítulo",
		})
		return
	}

	if query != "" {
		filtered := make([]Verse, 0, len(data.Verses))
		for _, verse := range data.Verses {
			if strings.Contains(strings.ToLower(verse.Text), strings.ToLower(query)) {
				filtered = append(filtered, verse)
			}
		}
		data.Verses = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    data,
		"message": "Busca concluída com sucesso",
		"meta": gin.H{
			"version":      version,
			"book":         book,
			"chapter":      chapter,
			"query":        query,
			"result_count": len(data.Verses),
		},
	})
}

// getBookInfo resolves a book's metadata from its first chapter.
// GET /api/bible/:version/:book/info
func (m *BibleModule) getBookInfo(c *gin.Context) {
	version := c.Param("version")
	book := c.Param("book")

	data, err := m.client.GetChapter(version, book, 1)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Livro não encontrado",
			"error":   "Não foi possível recuperar as informações do livro",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"book":         data.Book,
			"version":      version,
			"abbreviation": book,
		},
		"message": "Informações do livro recuperadas com sucesso",
	})
}

func parseVerseRange(raw string) (int, *int, error) {
	if strings.Contains(raw, "-") {
		parts := strings.SplitN(raw, "-", 2)
		start, err := strconv.Atoi(parts[0])
		if err != nil || start < 1 {
			return 0, nil, errInvalidRange
		}
		end, err := strconv.Atoi(parts[1])
		if err != nil || end < 1 {
			return 0, nil, errInvalidRange
		}
		if start > end {
			return 0, nil, errRangeOrder
		}
		return start, &end, nil
	}

	start, err := strconv.Atoi(raw)
	if err != nil || start < 1 {
		return 0, nil, errInvalidRange
	}
	return start, nil, nil
}
