package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"versehub/models"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.AutoMigrate(&models.User{})
	return db
}

func setupTestRouter(module *AuthModule) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	module.RegisterRoutes(router)
	return router
}

func createTestUser(db *gorm.DB, email, password string) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &models.User{
		Name:         "Maria",
		Email:        email,
		PasswordHash: string(hash),
	}
	db.Create(user)
	return user
}

func postJSON(router *gin.Engine, path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTokenRoundTrip(t *testing.T) {
	module := NewAuthModule(setupTestDB())

	token, expiresAt, err := module.issueToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	userID, err := module.parseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestParseToken_Garbage(t *testing.T) {
	module := NewAuthModule(setupTestDB())

	_, err := module.parseToken("nem-de-longe-um-jwt")
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	db := setupTestDB()
	issuer := NewAuthModule(db)
	verifier := NewAuthModule(db)
	verifier.secret = []byte("outro-segredo")

	token, _, err := issuer.issueToken(7)
	assert.NoError(t, err)

	_, err = verifier.parseToken(token)
	assert.Error(t, err)
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB()
	module := NewAuthModule(db)
	router := setupTestRouter(module)

	w := postJSON(router, "/api/auth/register", map[string]interface{}{
		"name":     "Maria",
		"email":    "maria@example.com",
		"password": "senha-bem-longa",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var registered struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.Data.Token)

	// O token emitido no registro abre a rota protegida
	req, _ := http.NewRequest("GET", "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer "+registered.Data.Token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "maria@example.com")

	w = postJSON(router, "/api/auth/login", map[string]interface{}{
		"email":    "maria@example.com",
		"password": "senha-bem-longa",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegister_ShortPassword(t *testing.T) {
	module := NewAuthModule(setupTestDB())
	router := setupTestRouter(module)

	w := postJSON(router, "/api/auth/register", map[string]interface{}{
		"name":     "Maria",
		"email":    "maria@example.com",
		"password": "curta",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := setupTestDB()
	module := NewAuthModule(db)
	router := setupTestRouter(module)
	createTestUser(db, "maria@example.com", "senha-bem-longa")

	w := postJSON(router, "/api/auth/register", map[string]interface{}{
		"name":     "Outra Maria",
		"email":    "maria@example.com",
		"password": "senha-bem-longa",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := setupTestDB()
	module := NewAuthModule(db)
	router := setupTestRouter(module)
	createTestUser(db, "maria@example.com", "senha-bem-longa")

	w := postJSON(router, "/api/auth/login", map[string]interface{}{
		"email":    "maria@example.com",
		"password": "senha-errada",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	module := NewAuthModule(setupTestDB())
	router := setupTestRouter(module)

	w := postJSON(router, "/api/auth/login", map[string]interface{}{
		"email":    "ninguem@example.com",
		"password": "tanto-faz",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_Unauthorized(t *testing.T) {
	module := NewAuthModule(setupTestDB())
	router := setupTestRouter(module)

	req, _ := http.NewRequest("GET", "/api/auth/user", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefresh(t *testing.T) {
	db := setupTestDB()
	module := NewAuthModule(db)
	router := setupTestRouter(module)
	user := createTestUser(db, "maria@example.com", "senha-bem-longa")

	token, _, err := module.issueToken(user.ID)
	assert.NoError(t, err)

	req, _ := http.NewRequest("POST", "/api/auth/refresh", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Data.Token)
}

func TestGoogleTokenLogin(t *testing.T) {
	// Endpoint tokeninfo falso
	tokeninfo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id_token") != "id-token-valido" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"sub":            "google-sub-123",
			"email":          "maria@example.com",
			"email_verified": "true",
			"name":           "Maria",
			"picture":        "https://example.com/avatar.png",
		})
	}))
	defer tokeninfo.Close()

	db := setupTestDB()
	module := NewAuthModule(db)
	module.google.endpoint = tokeninfo.URL
	router := setupTestRouter(module)

	// Primeira entrada cria a conta
	w := postJSON(router, "/api/auth/google/token", map[string]interface{}{
		"id_token": "id-token-valido",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var user models.User
	assert.NoError(t, db.Where("email = ?", "maria@example.com").First(&user).Error)
	assert.NotNil(t, user.GoogleID)
	assert.Equal(t, "google-sub-123", *user.GoogleID)

	// Segunda entrada reusa a mesma conta
	w = postJSON(router, "/api/auth/google/token", map[string]interface{}{
		"id_token": "id-token-valido",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGoogleTokenLogin_InvalidToken(t *testing.T) {
	tokeninfo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer tokeninfo.Close()

	module := NewAuthModule(setupTestDB())
	module.google.endpoint = tokeninfo.URL
	router := setupTestRouter(module)

	w := postJSON(router, "/api/auth/google/token", map[string]interface{}{
		"id_token": "qualquer-coisa",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGoogleTokenLogin_LinksExistingEmailAccount(t *testing.T) {
	tokeninfo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"sub":            "google-sub-456",
			"email":          "maria@example.com",
			"email_verified": "true",
			"name":           "Maria",
			"picture":        "https://example.com/avatar.png",
		})
	}))
	defer tokeninfo.Close()

	db := setupTestDB()
	existing := createTestUser(db, "maria@example.com", "senha-bem-longa")

	module := NewAuthModule(db)
	module.google.endpoint = tokeninfo.URL
	router := setupTestRouter(module)

	w := postJSON(router, "/api/auth/google/token", map[string]interface{}{
		"id_token": "id-token-valido",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var user models.User
	assert.NoError(t, db.First(&user, existing.ID).Error)
	assert.NotNil(t, user.GoogleID)
	assert.Equal(t, "google-sub-456", *user.GoogleID)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
