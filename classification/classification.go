package classification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"versehub/auth"
	"versehub/models"
)

type ClassificationModule struct {
	db   *gorm.DB
	auth *auth.AuthModule
}

func NewClassificationModule(db *gorm.DB, authModule *auth.AuthModule) *ClassificationModule {
	return &ClassificationModule{db: db, auth: authModule}
}

func (m *ClassificationModule) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// Estatísticas são públicas
	api.GET("/verse-stats", m.getVerseStats)
	api.GET("/community-feed", m.getCommunityFeed)

	// Rotas que precisam de uma identidade (usuário logado ou X-Device-ID)
	identified := api.Group("")
	identified.Use(m.auth.Identify())
	{
		identified.POST("/classify", m.classify)
		identified.POST("/classify-auth", m.classify) // alias mantido para o app
		identified.GET("/my-classification", m.myClassification)
		identified.GET("/my-classifications", m.myClassifications)
		identified.GET("/my-classifications-auth", m.myClassifications) // alias
		identified.DELETE("/classifications", m.unclassify)
		identified.POST("/check-classification", m.checkClassification)
	}
}

// resolvePrincipal decides who is acting: a verified bearer token wins,
// otherwise a non-empty X-Device-ID header identifies an anonymous device.
// Device ids are opaque and unverified.
func (m *ClassificationModule) resolvePrincipal(c *gin.Context) (Principal, bool) {
	if userID := c.GetInt(auth.ContextUserID); userID > 0 {
		return UserPrincipal(userID), true
	}
	if deviceID := c.GetHeader("X-Device-ID"); deviceID != "" {
		return DevicePrincipal(deviceID), true
	}
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": "Autenticação ou cabeçalho X-Device-ID obrigatório",
	})
	return Principal{}, false
}

// classify replaces the principal's whole category set for a verse.
// POST /api/classify
func (m *ClassificationModule) classify(c *gin.Context) {
	principal, ok := m.resolvePrincipal(c)
	if !ok {
		return
	}

	var request struct {
		Reference   string `json:"reference"`
		Text        string `json:"text"`
		Version     string `json:"version"`
		CategoryIDs []int  `json:"category_ids"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if request.Reference == "" || request.Text == "" || request.Version == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "reference, text e version são obrigatórios"})
		return
	}
	if len(request.Version) > 10 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "version inválida"})
		return
	}
	if len(request.CategoryIDs) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "category_ids não pode ser vazio"})
		return
	}

	verse, err := m.resolveOrCreateVerse(request.Reference, request.Version, request.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar versículo"})
		return
	}

	updated, err := m.replaceClassifications(principal, verse.ID, request.CategoryIDs)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao salvar classificação"})
		return
	}

	categories, err := m.categoriesForResponse(request.CategoryIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar categorias"})
		return
	}

	status := http.StatusCreated
	message := "Classificação salva com sucesso"
	if updated {
		status = http.StatusOK
		message = "Classificação atualizada com sucesso"
	}

	c.JSON(status, gin.H{
		"data": gin.H{
			"id":         verse.ID,
			"reference":  verse.Reference,
			"text":       verse.Text,
			"version":    verse.Version,
			"categories": categories,
			"created_at": verse.CreatedAt,
			"updated":    updated,
		},
		"message": message,
	})
}

// myClassification returns the principal's category set for one reference.
// GET /api/my-classification?reference=...
func (m *ClassificationModule) myClassification(c *gin.Context) {
	principal, ok := m.resolvePrincipal(c)
	if !ok {
		return
	}

	reference := c.Query("reference")
	if reference == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "reference é obrigatório"})
		return
	}

	var verse models.BibleVerse
	err := m.db.Where("reference = ?", reference).First(&verse).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{
			"data":    nil,
			"message": "Nenhuma classificação encontrada para esta referência",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar versículo"})
		return
	}

	categoryIDs, err := m.getForPrincipalAndVerse(principal, verse.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar classificação"})
		return
	}
	if len(categoryIDs) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"data":    nil,
			"message": "Nenhuma classificação encontrada para esta referência",
		})
		return
	}

	categories, err := m.categoriesForResponse(categoryIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao carregar categorias"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":           verse.ID,
			"reference":    verse.Reference,
			"text":         verse.Text,
			"version":      verse.Version,
			"categories":   categories,
			"category_ids": categoryIDs,
			"created_at":   verse.CreatedAt,
		},
		"message": "Classificação encontrada",
	})
}

// myClassifications lists every verse the principal classified, most recent
// first, one entry per verse with its full category set.
// GET /api/my-classifications
func (m *ClassificationModule) myClassifications(c *gin.Context) {
	principal, ok := m.resolvePrincipal(c)
	if !ok {
		return
	}

	classified, err := m.getForPrincipal(principal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar classificações"})
		return
	}

	data := make([]gin.H, 0, len(classified))
	for _, entry := range classified {
		data = append(data, gin.H{
			"id":         entry.Verse.ID,
			"reference":  entry.Verse.Reference,
			"text":       entry.Verse.Text,
			"version":    entry.Verse.Version,
			"categories": entry.Categories,
			"created_at": entry.Verse.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    data,
		"message": "Classificações recuperadas com sucesso",
	})
}

// getVerseStats is public: how the community classified one reference.
// GET /api/verse-stats?reference=...
func (m *ClassificationModule) getVerseStats(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "reference é obrigatório"})
		return
	}

	stats, err := m.verseStats(reference)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao calcular estatísticas"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    stats,
		"message": "Estatísticas recuperadas com sucesso",
	})
}

// getCommunityFeed is public: every classified verse ranked by popularity.
// GET /api/community-feed?category_id=...
func (m *ClassificationModule) getCommunityFeed(c *gin.Context) {
	var categoryFilter *int
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category_id inválido"})
			return
		}
		categoryFilter = &id
	}

	feed, err := m.communityFeed(categoryFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao montar o feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    feed,
		"message": "Feed da comunidade recuperado com sucesso",
		"meta": gin.H{
			"total_verses": len(feed),
		},
	})
}

// unclassify removes a single (verse, category) classification.
// DELETE /api/classifications
func (m *ClassificationModule) unclassify(c *gin.Context) {
	principal, ok := m.resolvePrincipal(c)
	if !ok {
		return
	}

	var request struct {
		VerseID    int `json:"verse_id"`
		CategoryID int `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.VerseID == 0 || request.CategoryID == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "verse_id e category_id são obrigatórios"})
		return
	}

	removed, err := m.remove(principal, request.VerseID, request.CategoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao remover classificação"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "Classificação não encontrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Classificação removida com sucesso"})
}

// checkClassification tells whether the principal already classified a verse
// with a category.
// POST /api/check-classification
func (m *ClassificationModule) checkClassification(c *gin.Context) {
	principal, ok := m.resolvePrincipal(c)
	if !ok {
		return
	}

	var request struct {
		VerseID    int `json:"verse_id"`
		CategoryID int `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.VerseID == 0 || request.CategoryID == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "verse_id e category_id são obrigatórios"})
		return
	}

	hasClassified, err := m.exists(principal, request.VerseID, request.CategoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao verificar classificação"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"has_classified": hasClassified,
		},
		"message": "Status da classificação recuperado com sucesso",
	})
}

// categoriesForResponse loads categories deduplicated, in ascending id order.
func (m *ClassificationModule) categoriesForResponse(categoryIDs []int) ([]models.Category, error) {
	idSet := make(map[int]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		idSet[id] = true
	}
	byID, err := m.loadCategories(idSet)
	if err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0, len(byID))
	for _, id := range uniqueInts(categoryIDs) {
		if category, ok := byID[id]; ok {
			categories = append(categories, category)
		}
	}
	return categories, nil
}
