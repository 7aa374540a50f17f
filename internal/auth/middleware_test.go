package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AdsulPratik2004/calendar-split-and-automation/internal/models"
	"github.com/gin-gonic/gin"
)

func guardRouter(r *Resolver) (*gin.Engine, *Identity) {
	gin.SetMode(gin.TestMode)

	var seen Identity
	router := gin.New()
	router.POST("/protected", Guard(r), func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		if _, ok := HandleFrom(c); !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		seen = identity
		c.Status(http.StatusOK)
	})
	return router, &seen
}

func TestGuardRejectsMissingHeader(t *testing.T) {
	source := &stubSource{roles: map[string]string{}}
	router, _ := guardRouter(testResolver(source, stubVerifier{}))

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
	expected := `{"error":"Authorization header is missing"}`
	if w.Body.String() != expected {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestGuardPassesIdentityDownstream(t *testing.T) {
	source := &stubSource{roles: map[string]string{"user-1": models.RoleUser}}
	router, seen := guardRouter(testResolver(source, stubVerifier{userID: "user-1"}))

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if seen.UserID != "user-1" || seen.Role != models.RoleUser {
		t.Errorf("downstream handler saw wrong identity: %+v", *seen)
	}
}

func TestGuardProfileNotFoundIs404(t *testing.T) {
	source := &stubSource{roles: map[string]string{}}
	router, _ := guardRouter(testResolver(source, stubVerifier{userID: "unknown"}))

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	expected := `{"error":"User profile not found"}`
	if w.Body.String() != expected {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}
