package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "svc-frontdesk",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func callAuth(t *testing.T, header string, skip func(echo.Context) bool) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bills", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return BearerAuth(testSecret, skip)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)
}

func TestBearerAuth_ValidToken(t *testing.T) {
	err := callAuth(t, "Bearer "+signToken(t, testSecret), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBearerAuth_MissingToken(t *testing.T) {
	err := callAuth(t, "", nil)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestBearerAuth_WrongSecret(t *testing.T) {
	err := callAuth(t, "Bearer "+signToken(t, "other-secret"), nil)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad signature, got %v", err)
	}
}

func TestBearerAuth_SkipsHealth(t *testing.T) {
	skip := func(c echo.Context) bool { return true }
	if err := callAuth(t, "", skip); err != nil {
		t.Errorf("expected skipped path to pass, got %v", err)
	}
}
