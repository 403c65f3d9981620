package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sustainshare-api/middleware"
	"sustainshare-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var donor = &models.User{ID: "u1", Email: "alice@example.com", Role: models.RoleDonor}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := middleware.NewTokenIssuer("secret", time.Hour)

	token, err := issuer.GenerateToken(donor)
	require.NoError(t, err)

	claims, err := issuer.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, models.RoleDonor, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := middleware.NewTokenIssuer("secret", time.Hour)

	other, err := middleware.NewTokenIssuer("different", time.Hour).GenerateToken(donor)
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	expiredStr, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, middleware.Claims{UserID: "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong_secret": other,
		"expired":      expiredStr,
		"alg_none":     unsigned,
		"garbage":      "not-a-token",
		"legacy_demo":  "demo-jwt-token-u1",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := issuer.ParseToken(token)
			assert.ErrorIs(t, err, middleware.ErrInvalidToken)
		})
	}
}

func protectedRouter(issuer *middleware.TokenIssuer, roles ...models.UserRole) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{middleware.AuthRequired(issuer)}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RoleRequired(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": middleware.GetUserID(c), "role": middleware.GetRole(c)})
	})
	r.GET("/private", handlers...)
	return r
}

func TestAuthRequired(t *testing.T) {
	issuer := middleware.NewTokenIssuer("secret", time.Hour)
	token, err := issuer.GenerateToken(donor)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid_token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing_header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong_scheme", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "bad_token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			protectedRouter(issuer).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"userId":"u1","role":"DONOR"}`, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"message"`)
			}
		})
	}
}

func TestRoleRequired(t *testing.T) {
	issuer := middleware.NewTokenIssuer("secret", time.Hour)
	donorToken, err := issuer.GenerateToken(donor)
	require.NoError(t, err)
	adminToken, err := issuer.GenerateToken(&models.User{ID: "a1", Role: "admin"})
	require.NoError(t, err)

	router := protectedRouter(issuer, models.RoleAdmin)

	for token, want := range map[string]int{
		donorToken: http.StatusForbidden,
		adminToken: http.StatusOK,
	} {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code)
	}
}
