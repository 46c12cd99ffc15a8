//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"sponsor-portal/internal/handler/dto/request"
	"sponsor-portal/internal/pkg/cookie"
	"sponsor-portal/tests/common/builder"
	"sponsor-portal/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Login posts the builder's credentials and returns the session token from the cookie
func Login(t *testing.T, router *gin.Engine, b *builder.InfluencerBuilder) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", b.BuildLoginDTO(), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "session cookie not found")
	require.NotEmpty(t, sessionCookie.Value, "session cookie is empty")

	return sessionCookie.Value
}

func LoginWith(t *testing.T, router *gin.Engine, req request.LoginRequest) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login", req, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return httptest.ExtractCookie(w, cookie.SessionCookieName)
}

func Logout(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
