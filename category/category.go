package category

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"versehub/auth"
	"versehub/models"
)

type CategoryModule struct {
	db   *gorm.DB
	auth *auth.AuthModule
}

func NewCategoryModule(db *gorm.DB, authModule *auth.AuthModule) *CategoryModule {
	return &CategoryModule{db: db, auth: authModule}
}

func (m *CategoryModule) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.GET("/categories", m.list)
	api.GET("/categories/:id", m.show)
	api.GET("/popular-categories", m.popular)

	protected := api.Group("")
	protected.Use(m.auth.RequireAuth())
	{
		protected.POST("/categories", m.create)
		protected.PUT("/categories/:id", m.update)
		protected.PATCH("/categories/:id", m.update)
		protected.DELETE("/categories/:id", m.delete)
	}
}

// list returns the whole taxonomy, optionally filtered by group.
// GET /api/categories?group=...
func (m *CategoryModule) list(c *gin.Context) {
	query := m.db.Model(&models.Category{}).Order("group_label").Order("id")
	if group := c.Query("group"); group != "" {
		query = query.Where("group_label = ?", group)
	}

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar categorias"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": categories,
		"meta": gin.H{
			"count": len(categories),
		},
	})
}

func (m *CategoryModule) show(c *gin.Context) {
	category, ok := m.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": category})
}

// popular ranks categories by how often the community used them.
// GET /api/popular-categories?limit=10
func (m *CategoryModule) popular(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	var results []struct {
		models.Category
		ClassificationsCount int `json:"classifications_count"`
	}
	err := m.db.Model(&models.Category{}).
		Select("categories.*, COUNT(verse_classifications.id) as classifications_count").
		Joins("LEFT JOIN verse_classifications ON verse_classifications.category_id = categories.id").
		Group("categories.id").
		Order("classifications_count DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar categorias populares"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    results,
		"message": "Categorias populares recuperadas com sucesso",
	})
}

func (m *CategoryModule) create(c *gin.Context) {
	var request struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Color       string `json:"color"`
		Group       string `json:"group"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if request.Name == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name é obrigatório"})
		return
	}

	slug := request.Slug
	if slug == "" {
		slug = generateSlug(request.Name)
	}

	var existing models.Category
	if err := m.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Já existe uma categoria com este slug"})
		return
	}

	category := models.Category{
		Name:        request.Name,
		Slug:        slug,
		Description: request.Description,
		Icon:        request.Icon,
		Color:       request.Color,
		GroupLabel:  request.Group,
	}
	if err := m.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar categoria"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    category,
		"message": "Categoria criada com sucesso",
	})
}

func (m *CategoryModule) update(c *gin.Context) {
	category, ok := m.find(c)
	if !ok {
		return
	}

	var request struct {
		Name        *string `json:"name"`
		Slug        *string `json:"slug"`
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
		Color       *string `json:"color"`
		Group       *string `json:"group"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}

	if request.Name != nil {
		if *request.Name == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name não pode ser vazio"})
			return
		}
		category.Name = *request.Name
	}
	if request.Slug != nil && *request.Slug != "" {
		category.Slug = *request.Slug
	}
	if request.Description != nil {
		category.Description = *request.Description
	}
	if request.Icon != nil {
		category.Icon = *request.Icon
	}
	if request.Color != nil {
		category.Color = *request.Color
	}
	if request.Group != nil {
		category.GroupLabel = *request.Group
	}

	if err := m.db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar categoria"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    category,
		"message": "Categoria atualizada com sucesso",
	})
}

// delete também remove as classificações da categoria para não deixar
// referências órfãs.
func (m *CategoryModule) delete(c *gin.Context) {
	category, ok := m.find(c)
	if !ok {
		return
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.VerseClassification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover categoria"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categoria removida com sucesso"})
}

func (m *CategoryModule) find(c *gin.Context) (models.Category, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return models.Category{}, false
	}

	var category models.Category
	if err := m.db.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Categoria não encontrada"})
		return models.Category{}, false
	}
	return category, true
}
