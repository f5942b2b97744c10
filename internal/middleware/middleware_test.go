package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-be-svc/internal/auth"
	"poi-be-svc/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(tokens *auth.TokenManager) *gin.Engine {
	router := gin.New()
	router.Use(LoggerMiddleware(logger.NewDiscardLogger()))
	router.Use(ErrorHandler(logger.NewDiscardLogger()))
	router.NoRoute(NoRouteHandler())

	echo := func(c *gin.Context) {
		caller := CallerFrom(c)
		c.JSON(http.StatusOK, gin.H{"id": caller.UserID, "role": caller.Role})
	}
	router.GET("/optional", OptionalAuthenticate(tokens), echo)
	router.GET("/private", Authenticate(tokens), echo)
	router.GET("/managed", Authenticate(tokens), Authorize(auth.ManagementRoles...), echo)
	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	return router
}

func do(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	router := newTestRouter(tokens)
	token, err := tokens.Issue("65a1f0c2a1b2c3d4e5f60719", "u@example.com", auth.RoleUser)
	require.NoError(t, err)

	w := do(router, "/private", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token, authorization denied")

	w = do(router, "/private", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is not valid")

	w = do(router, "/private", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "65a1f0c2a1b2c3d4e5f60719")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestOptionalAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	router := newTestRouter(tokens)

	w := do(router, "/optional", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"","role":""}`, w.Body.String())

	w = do(router, "/optional", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"","role":""}`, w.Body.String())

	token, err := tokens.Issue("65a1f0c2a1b2c3d4e5f60719", "a@example.com", auth.RoleAdmin)
	require.NoError(t, err)
	w = do(router, "/optional", token)
	assert.JSONEq(t, `{"id":"65a1f0c2a1b2c3d4e5f60719","role":"admin"}`, w.Body.String())
}

func TestAuthorize(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	router := newTestRouter(tokens)

	userToken, err := tokens.Issue("65a1f0c2a1b2c3d4e5f60719", "u@example.com", auth.RoleUser)
	require.NoError(t, err)
	staffToken, err := tokens.Issue("65a1f0c2a1b2c3d4e5f60720", "s@example.com", auth.RoleStaff)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, do(router, "/managed", "").Code)
	assert.Equal(t, http.StatusForbidden, do(router, "/managed", userToken).Code)
	assert.Equal(t, http.StatusOK, do(router, "/managed", staffToken).Code)
}

func TestErrorHandlerAndNoRoute(t *testing.T) {
	router := newTestRouter(auth.NewTokenManager("secret", time.Hour))

	w := do(router, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())

	w = do(router, "/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://localhost:3000"}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
