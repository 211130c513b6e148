// README: Identity middleware tests.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestIdentityCopiesHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity())

	var gotID, gotRole string
	r.GET("/probe", func(c *gin.Context) {
		gotID = c.GetString("userID")
		gotRole = c.GetString("userRole")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-User-ID", "client-1")
	req.Header.Set("X-User-Role", "Client")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if gotID != "client-1" || gotRole != "Client" {
		t.Errorf("identity = (%q, %q), want (client-1, Client)", gotID, gotRole)
	}
}

func TestIdentityMissingHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity())

	var gotID string
	r.GET("/probe", func(c *gin.Context) {
		gotID = c.GetString("userID")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if gotID != "" {
		t.Errorf("userID = %q, want empty when no header is present", gotID)
	}
}
