package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"buenlibro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")
	os.Exit(m.Run())
}

func setupProtectedRouter() *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/protegido", func(c *gin.Context) {
		id, _ := c.Get("usuario_id")
		role, _ := c.Get("usuario_role")
		c.JSON(http.StatusOK, gin.H{"usuario_id": id, "role": role})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := setupProtectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	router := setupProtectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Basic abc123")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-Bearer header, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := setupProtectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer token-falso")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for invalid token, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	router := setupProtectedRouter()

	usuarioID := uuid.New()
	token, err := utils.GenerateToken(usuarioID, "cliente1", "cliente")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminMiddlewareRejectsCliente(t *testing.T) {
	r := gin.New()
	r.Use(AuthMiddleware(), AdminMiddleware())
	r.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

	token, _ := utils.GenerateToken(uuid.New(), "cliente1", "cliente")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for cliente role, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	r := gin.New()
	r.Use(AuthMiddleware(), AdminMiddleware())
	r.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

	token, _ := utils.GenerateToken(uuid.New(), "admin", "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", w.Code, w.Body.String())
	}
}
