package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"versehub/models"
)

type AuthModule struct {
	db       *gorm.DB
	secret   []byte
	tokenTTL time.Duration
	google   *googleVerifier
}

func NewAuthModule(db *gorm.DB) *AuthModule {
	secret := os.Getenv("jwt_secret")
	if secret == "" {
		log.Println("jwt_secret não definido, usando valor de desenvolvimento")
		secret = "versehub-dev-secret"
	}

	ttl := 7 * 24 * time.Hour
	if raw := os.Getenv("jwt_ttl_hours"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}

	return &AuthModule{
		db:       db,
		secret:   []byte(secret),
		tokenTTL: ttl,
		google:   newGoogleVerifier(),
	}
}

func (m *AuthModule) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/auth")
	api.POST("/register", m.register)
	api.POST("/login", m.login)
	api.POST("/google/token", m.googleTokenLogin)

	protected := api.Group("")
	protected.Use(m.RequireAuth())
	{
		protected.GET("/user", m.currentUser)
		protected.POST("/refresh", m.refresh)
	}
}

// register cria uma conta local com senha.
func (m *AuthModule) register(c *gin.Context) {
	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	if request.Name == "" || request.Email == "" || len(request.Password) < 8 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "name, email e password (mínimo 8 caracteres) são obrigatórios"})
		return
	}

	var existing models.User
	err := m.db.Where("email = ?", request.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Este email já está em uso"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao verificar email"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao processar senha"})
		return
	}

	user := models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: string(hash),
	}
	if err := m.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar usuário"})
		return
	}

	m.respondWithToken(c, http.StatusCreated, user, "Conta criada com sucesso")
}

// login autentica com email e senha.
func (m *AuthModule) login(c *gin.Context) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.Email == "" || request.Password == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "email e password são obrigatórios"})
		return
	}

	var user models.User
	err := m.db.Where("email = ?", request.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar usuário"})
		return
	}

	if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais inválidas"})
		return
	}

	m.respondWithToken(c, http.StatusOK, user, "Login realizado com sucesso")
}

// googleTokenLogin troca um id_token do Google por um token da API. A conta
// é criada na primeira entrada e vinculada por google_id ou email.
func (m *AuthModule) googleTokenLogin(c *gin.Context) {
	var request struct {
		IDToken string `json:"id_token"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.IDToken == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "id_token é obrigatório"})
		return
	}

	profile, err := m.google.verify(request.IDToken)
	if err != nil {
		log.Println("falha ao verificar id_token do Google:", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token do Google inválido"})
		return
	}

	var user models.User
	err = m.db.Where("google_id = ?", profile.Sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Vincula pela conta de email já existente, se houver
		err = m.db.Where("email = ?", profile.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				Name:     profile.Name,
				Email:    profile.Email,
				GoogleID: &profile.Sub,
				Avatar:   profile.Picture,
			}
			if err := m.db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar usuário"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar usuário"})
			return
		} else {
			user.GoogleID = &profile.Sub
			if user.Avatar == "" {
				user.Avatar = profile.Picture
			}
			if err := m.db.Save(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar usuário"})
				return
			}
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao buscar usuário"})
		return
	}

	m.respondWithToken(c, http.StatusOK, user, "Login realizado com sucesso")
}

// currentUser devolve o usuário do token.
func (m *AuthModule) currentUser(c *gin.Context) {
	userID := c.GetInt(ContextUserID)

	var user models.User
	if err := m.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// refresh emite um token novo para o usuário autenticado.
func (m *AuthModule) refresh(c *gin.Context) {
	userID := c.GetInt(ContextUserID)

	var user models.User
	if err := m.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuário não encontrado"})
		return
	}

	m.respondWithToken(c, http.StatusOK, user, "Token renovado com sucesso")
}

func (m *AuthModule) respondWithToken(c *gin.Context, status int, user models.User, message string) {
	token, expiresAt, err := m.issueToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao gerar token"})
		return
	}

	c.JSON(status, gin.H{
		"data": gin.H{
			"user":       user,
			"token":      token,
			"expires_at": expiresAt,
		},
		"message": message,
	})
}
