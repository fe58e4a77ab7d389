package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"virtual-tutor/internal/model"
	"virtual-tutor/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestExtractClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	// missing header
	ctx, _ := newContext("")
	_, err := extractClaims(ctx)
	require.Error(t, err)

	// bad format
	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx)
	require.Error(t, err)

	// wrong scheme
	ctx, _ = newContext("Basic abc")
	_, err = extractClaims(ctx)
	require.Error(t, err)

	// invalid token
	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx)
	require.Error(t, err)

	// token signed with another secret
	t.Setenv("JWT_SECRET", "othersecret")
	tok, err := service.IssueAccessToken(model.User{ID: 1}, time.Minute)
	require.NoError(t, err)
	t.Setenv("JWT_SECRET", "testsecret")
	ctx, _ = newContext("Bearer " + tok)
	_, err = extractClaims(ctx)
	require.Error(t, err)

	// expired token
	expired, err := service.IssueAccessToken(model.User{ID: 1}, -time.Minute)
	require.NoError(t, err)
	ctx, _ = newContext("Bearer " + expired)
	_, err = extractClaims(ctx)
	require.Error(t, err)

	// valid token, case-insensitive scheme
	tok, err = service.IssueAccessToken(model.User{ID: 1, IsAdmin: true}, time.Minute)
	require.NoError(t, err)
	ctx, _ = newContext("bearer " + tok)
	claims, err := extractClaims(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.True(t, claims.IsAdmin)
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	tok, err := service.IssueAccessToken(model.User{ID: 2}, time.Minute)
	require.NoError(t, err)

	// success path stores the claims on the context
	ctx, rec := newContext("Bearer " + tok)
	called := false
	handler := RequireAuth(func(c echo.Context) error {
		called = true
		require.Equal(t, 2, Claims(c).UserID)
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// missing token never reaches the handler
	ctx, _ = newContext("")
	called = false
	err = RequireAuth(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "adminsecret")
	adminTok, err := service.IssueAccessToken(model.User{ID: 3, IsAdmin: true}, time.Minute)
	require.NoError(t, err)
	userTok, err := service.IssueAccessToken(model.User{ID: 4}, time.Minute)
	require.NoError(t, err)

	// admin passes
	ctx, rec := newContext("Bearer " + adminTok)
	called := false
	err = RequireAdmin(func(c echo.Context) error { called = true; return c.String(http.StatusOK, "admin") })(ctx)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	// non-admin gets 403
	ctx, _ = newContext("Bearer " + userTok)
	called = false
	err = RequireAdmin(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusForbidden, he.Code)
}
