package bible

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"versehub/models"
)

var (
	errInvalidRange = errors.New("intervalo de versículos inválido")
	errRangeOrder   = errors.New("o versículo inicial deve ser menor ou igual ao final")
)

// Catalog CRUD for the seeded versions. Reads are public, writes need a
// logged in user.
func (m *BibleModule) registerVersionRoutes(router *gin.Engine) {
	api := router.Group("/api/bible-versions")
	api.GET("", m.listVersions)
	api.GET("/:id", m.showVersion)

	protected := api.Group("")
	protected.Use(m.auth.RequireAuth())
	{
		protected.POST("", m.createVersion)
		protected.PUT("/:id", m.updateVersion)
		protected.PATCH("/:id", m.updateVersion)
		protected.DELETE("/:id", m.deleteVersion)
	}
}

func (m *BibleModule) listVersions(c *gin.Context) {
	var versions []models.BibleVersion
	if err := m.db.Order("language").Order("name").Find(&versions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar versões"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": versions})
}

func (m *BibleModule) showVersion(c *gin.Context) {
	version, ok := m.findVersion(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": version})
}

func (m *BibleModule) createVersion(c *gin.Context) {
	var request struct {
		Slug     string `json:"slug"`
		Name     string `json:"name"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if request.Slug == "" || len(request.Slug) > 10 || request.Name == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "slug (máximo 10 caracteres) e name são obrigatórios"})
		return
	}

	var existing models.BibleVersion
	if err := m.db.Where("slug = ?", request.Slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Já existe uma versão com este slug"})
		return
	}

	version := models.BibleVersion{
		Slug:     request.Slug,
		Name:     request.Name,
		Language: request.Language,
	}
	if err := m.db.Create(&version).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar versão"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    version,
		"message": "Versão criada com sucesso",
	})
}

func (m *BibleModule) updateVersion(c *gin.Context) {
	version, ok := m.findVersion(c)
	if !ok {
		return
	}

	var request struct {
		Slug     *string `json:"slug"`
		Name     *string `json:"name"`
		Language *string `json:"language"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if request.Slug != nil {
		if *request.Slug == "" || len(*request.Slug) > 10 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "slug inválido"})
			return
		}
		version.Slug = *request.Slug
	}
	if request.Name != nil {
		version.Name = *request.Name
	}
	if request.Language != nil {
		version.Language = *request.Language
	}

	if err := m.db.Save(&version).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar versão"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    version,
		"message": "Versão atualizada com sucesso",
	})
}

func (m *BibleModule) deleteVersion(c *gin.Context) {
	version, ok := m.findVersion(c)
	if !ok {
		return
	}

	if err := m.db.Delete(&version).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover versão"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Versão removida com sucesso"})
}

func (m *BibleModule) findVersion(c *gin.Context) (models.BibleVersion, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return models.BibleVersion{}, false
	}

	var version models.BibleVersion
	if err := m.db.First(&version, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Versão não encontrada"})
		return models.BibleVersion{}, false
	}
	return version, true
}
