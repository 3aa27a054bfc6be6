package bible

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"versehub/auth"
	"versehub/models"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.AutoMigrate(&models.User{}, &models.BibleVersion{})
	return db
}

func setupVersionRouter(db *gorm.DB) (*gin.Engine, *auth.AuthModule) {
	gin.SetMode(gin.TestMode)
	authModule := auth.NewAuthModule(db)
	module := NewBibleModule(db, NewClient(), authModule)
	router := gin.New()
	module.RegisterRoutes(router)
	return router, authModule
}

func authToken(t *testing.T, db *gorm.DB, authModule *auth.AuthModule) string {
	t.Helper()
	user := &models.User{Name: "Admin", Email: "admin@example.com"}
	db.Create(user)
	token, err := authModule.TokenForUser(user.ID)
	assert.NoError(t, err)
	return token
}

func createTestVersion(db *gorm.DB, slug, name string) *models.BibleVersion {
	version := &models.BibleVersion{Slug: slug, Name: name, Language: "pt-BR"}
	db.Create(version)
	return version
}

func TestListVersions_Public(t *testing.T) {
	db := setupTestDB()
	router, _ := setupVersionRouter(db)
	createTestVersion(db, "nvi", "Nova Versão Internacional")
	createTestVersion(db, "acf", "Almeida Corrigida Fiel")

	req, _ := http.NewRequest("GET", "/api/bible-versions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []models.BibleVersion `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Data, 2)
}

func TestCreateVersion_RequiresAuth(t *testing.T) {
	db := setupTestDB()
	router, _ := setupVersionRouter(db)

	body, _ := json.Marshal(map[string]string{"slug": "kjv", "name": "King James"})
	req, _ := http.NewRequest("POST", "/api/bible-versions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateVersion(t *testing.T) {
	db := setupTestDB()
	router, authModule := setupVersionRouter(db)
	token := authToken(t, db, authModule)

	body, _ := json.Marshal(map[string]string{
		"slug":     "kjv",
		"name":     "King James Version",
		"language": "en",
	})
	req, _ := http.NewRequest("POST", "/api/bible-versions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var stored models.BibleVersion
	assert.NoError(t, db.Where("slug = ?", "kjv").First(&stored).Error)
	assert.Equal(t, "King James Version", stored.Name)
}

func TestCreateVersion_DuplicateSlug(t *testing.T) {
	db := setupTestDB()
	router, authModule := setupVersionRouter(db)
	token := authToken(t, db, authModule)
	createTestVersion(db, "nvi", "Nova Versão Internacional")

	body, _ := json.Marshal(map[string]string{"slug": "nvi", "name": "Outra NVI"})
	req, _ := http.NewRequest("POST", "/api/bible-versions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateVersion(t *testing.T) {
	db := setupTestDB()
	router, authModule := setupVersionRouter(db)
	token := authToken(t, db, authModule)
	version := createTestVersion(db, "nvi", "Nova Versão Internacional")

	body, _ := json.Marshal(map[string]string{"name": "NVI 2023"})
	req, _ := http.NewRequest("PATCH", "/api/bible-versions/"+strconv.Itoa(version.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.BibleVersion
	assert.NoError(t, db.First(&stored, version.ID).Error)
	assert.Equal(t, "NVI 2023", stored.Name)
	assert.Equal(t, "nvi", stored.Slug)
}

func TestDeleteVersion(t *testing.T) {
	db := setupTestDB()
	router, authModule := setupVersionRouter(db)
	token := authToken(t, db, authModule)
	version := createTestVersion(db, "nvi", "Nova Versão Internacional")

	req, _ := http.NewRequest("DELETE", "/api/bible-versions/"+strconv.Itoa(version.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.BibleVersion{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestShowVersion_NotFound(t *testing.T) {
	db := setupTestDB()
	router, _ := setupVersionRouter(db)

	req, _ := http.NewRequest("GET", "/api/bible-versions/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
