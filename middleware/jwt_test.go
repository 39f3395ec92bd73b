package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/gymapi/models"
	"github.com/padraicbc/gymapi/services"
)

var key = []byte("mw-test")

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := services.NewAuthService(nil, key, time.Hour).IssueToken(&models.User{UserID: 9, Email: "a@gym.example", Role: role})
	require.NoError(t, err)
	return tok
}

func run(t *testing.T, auth string, mws ...echo.MiddlewareFunc) (int, *Principal) {
	t.Helper()
	e := echo.New()
	var seen *Principal
	h := func(c echo.Context) error {
		if p, ok := PrincipalFrom(c); ok {
			seen = &p
		}
		return c.NoContent(http.StatusOK)
	}
	e.GET("/", h, mws...)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code, seen
}

func TestJWT(t *testing.T) {
	tok := token(t, models.RoleMember)

	code, p := run(t, "Bearer "+tok, JWT(key))
	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, p)
	assert.Equal(t, Principal{UserID: 9, Email: "a@gym.example", Role: models.RoleMember}, *p)

	code, _ = run(t, tok, JWT(key))
	assert.Equal(t, http.StatusOK, code)

	code, _ = run(t, "", JWT(key))
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = run(t, "Bearer nope", JWT(key))
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRequireRole(t *testing.T) {
	code, _ := run(t, "Bearer "+token(t, models.RoleMember), JWT(key), RequireRole(models.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = run(t, "Bearer "+token(t, models.RoleAdmin), JWT(key), RequireRole(models.RoleAdmin))
	assert.Equal(t, http.StatusOK, code)

	code, _ = run(t, "", RequireRole(models.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, code)
}
