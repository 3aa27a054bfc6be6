package cache

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestWriteAndRead(t *testing.T) {
	chdirTemp(t)

	assert.NoError(t, Write("testes", "chave", []byte(`{"ok":true}`)))

	content, found := Read("testes", "chave", time.Minute)
	assert.True(t, found)
	assert.Equal(t, `{"ok":true}`, string(content))
}

func TestRead_Miss(t *testing.T) {
	chdirTemp(t)

	_, found := Read("testes", "inexistente", time.Minute)
	assert.False(t, found)
}

func TestRead_Expired(t *testing.T) {
	chdirTemp(t)

	assert.NoError(t, Write("testes", "chave", []byte("valor")))

	_, found := Read("testes", "chave", -time.Second)
	assert.False(t, found)
}

func TestClear(t *testing.T) {
	chdirTemp(t)

	assert.NoError(t, Write("testes", "chave", []byte("valor")))
	assert.NoError(t, Clear("testes", "chave"))

	_, found := Read("testes", "chave", time.Minute)
	assert.False(t, found)

	// Limpar o que não existe não é erro
	assert.NoError(t, Clear("testes", "chave"))
}

func TestClearNamespace(t *testing.T) {
	chdirTemp(t)

	assert.NoError(t, Write("um", "a", []byte("1")))
	assert.NoError(t, Write("um", "b", []byte("2")))
	assert.NoError(t, Write("dois", "c", []byte("3")))

	assert.NoError(t, ClearNamespace("um"))

	_, found := Read("um", "a", time.Minute)
	assert.False(t, found)
	_, found = Read("dois", "c", time.Minute)
	assert.True(t, found)
}

func TestClearOld(t *testing.T) {
	chdirTemp(t)

	assert.NoError(t, Write("testes", "velho", []byte("1")))
	old := time.Now().Add(-2 * time.Hour)
	assert.NoError(t, os.Chtimes(Path("testes", "velho"), old, old))
	assert.NoError(t, Write("testes", "novo", []byte("2")))

	assert.NoError(t, ClearOld(time.Hour))

	_, found := Read("testes", "velho", 24*time.Hour)
	assert.False(t, found)
	_, found = Read("testes", "novo", 24*time.Hour)
	assert.True(t, found)
}

func TestPath_DistinguishesKeys(t *testing.T) {
	// Chaves diferentes que sanitizam para o mesmo nome não colidem
	a := Path("ns", "João 3:16")
	b := Path("ns", "João 3-16")
	assert.NotEqual(t, a, b)
}

func TestMiddleware_HitAndMiss(t *testing.T) {
	chdirTemp(t)
	gin.SetMode(gin.TestMode)

	calls := 0
	router := gin.New()
	router.Use(Middleware("testes", time.Minute, "/api/stats"))
	router.GET("/api/stats", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})

	req, _ := http.NewRequest("GET", "/api/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Contains(t, w.Body.String(), `"calls":1`)
	assert.Equal(t, 1, calls)
}

func TestMiddleware_DistinctQueriesCachedSeparately(t *testing.T) {
	chdirTemp(t)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware("testes", time.Minute, "/api/stats"))
	router.GET("/api/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ref": c.Query("reference")})
	})

	reqA, _ := http.NewRequest("GET", "/api/stats?reference=a", nil)
	reqB, _ := http.NewRequest("GET", "/api/stats?reference=b", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, reqA)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, reqB)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, reqA)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
	assert.Contains(t, w.Body.String(), `"ref":"a"`)
}

func TestMiddleware_IgnoresOtherPaths(t *testing.T) {
	chdirTemp(t)
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Middleware("testes", time.Minute, "/api/stats"))
	router.GET("/api/outra", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req, _ := http.NewRequest("GET", "/api/outra", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Cache"))
}
