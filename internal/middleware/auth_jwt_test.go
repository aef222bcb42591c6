package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	return s
}

func doRequest(authz string, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	_ = h(c)
	return rec, c
}

func TestAuthJWT_ValidToken_SetsContext(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}

	now := time.Now()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  int64(7),
		"role": "USER",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Minute).Unix(),
	})

	rec, c := doRequest("Bearer "+token, AuthJWT(cfg))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), c.Get(CtxUserIDKey))
	assert.Equal(t, "USER", c.Get(CtxUserRoleKey))
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}

	rec, _ := doRequest("", AuthJWT(cfg))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}

	now := time.Now()
	token := signToken(t, "other_secret", jwt.MapClaims{
		"sub":  int64(7),
		"role": "USER",
		"exp":  now.Add(time.Minute).Unix(),
	})

	rec, _ := doRequest("Bearer "+token, AuthJWT(cfg))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}

	now := time.Now()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  int64(7),
		"role": "USER",
		"exp":  now.Add(-time.Minute).Unix(),
	})

	rec, _ := doRequest("Bearer "+token, AuthJWT(cfg))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoleGuard_BlocksUser(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}

	now := time.Now()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  int64(7),
		"role": "USER",
		"exp":  now.Add(time.Minute).Unix(),
	})

	rec, _ := doRequest("Bearer "+token, AuthJWT(cfg), AdminRoleGuard())
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRoleGuard_AllowsAdmin(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}

	now := time.Now()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  int64(9),
		"role": "ADMIN",
		"exp":  now.Add(time.Minute).Unix(),
	})

	rec, _ := doRequest("Bearer "+token, AuthJWT(cfg), AdminRoleGuard())
	assert.Equal(t, http.StatusOK, rec.Code)
}
