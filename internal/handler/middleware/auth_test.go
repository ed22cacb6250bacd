//go:build unit

package middleware_test

import (
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"multimart/internal/domain/user"
	"multimart/internal/handler/middleware"
	"multimart/internal/pkg/config"
	"multimart/internal/pkg/cookie"
	"multimart/internal/pkg/jwt"
	"multimart/internal/usecase"
	"multimart/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService(t *testing.T) *jwt.Service {
	t.Helper()

	cfg := config.NewTestConfig()
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err)

	return jwt.NewService(cfg.JWT.Secret, duration)
}

func newAuthRouter(t *testing.T, svc *jwt.Service, minRole user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	router := gin.New()
	group := router.Group("/", auth.RequireAuth())
	if minRole != "" {
		group.Use(auth.RequireRoleAtLeast(minRole))
	}
	group.GET("/me", func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"user_id": actor.UserID.String(),
			"role":    actor.Role.String(),
		})
	})

	return router
}

func TestRequireAuth(t *testing.T) {
	svc := newJWTService(t)
	userID := uuid.New()

	t.Run("accepts a bearer token and exposes the actor", func(t *testing.T) {
		router := newAuthRouter(t, svc, "")
		token, err := svc.GenerateToken(userID, user.RoleCustomer, nil)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "customer", body["role"])
	})

	t.Run("accepts the access token cookie", func(t *testing.T) {
		router := newAuthRouter(t, svc, "")
		token, err := svc.GenerateToken(userID, user.RoleCustomer, nil)
		require.NoError(t, err)

		req := stdhttptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: token})
		w := stdhttptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		router := newAuthRouter(t, svc, "")

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		router := newAuthRouter(t, svc, "")

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "not-a-jwt")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		router := newAuthRouter(t, svc, "")
		expiredSvc := jwt.NewService(config.NewTestConfig().JWT.Secret, -time.Minute)
		token, err := expiredSvc.GenerateToken(userID, user.RoleCustomer, nil)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		router := newAuthRouter(t, svc, "")
		otherSvc := jwt.NewService("other-secret", time.Hour)
		token, err := otherSvc.GenerateToken(userID, user.RoleCustomer, nil)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	svc := newJWTService(t)

	cases := []struct {
		name       string
		role       user.Role
		expectCode int
	}{
		{name: "customer is below shop owner", role: user.RoleCustomer, expectCode: http.StatusForbidden},
		{name: "shop owner meets the bar", role: user.RoleShopOwner, expectCode: http.StatusOK},
		{name: "admin exceeds the bar", role: user.RoleAdmin, expectCode: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newAuthRouter(t, svc, user.RoleShopOwner)
			token, err := svc.GenerateToken(uuid.New(), tc.role, nil)
			require.NoError(t, err)

			w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)

			if tc.expectCode == http.StatusOK {
				assert.Equal(t, http.StatusOK, w.Code)
			} else {
				httptest.AssertErrorResponse(t, w, tc.expectCode, "Insufficient permissions")
			}
		})
	}
}

func TestGetActor_ShopClaim(t *testing.T) {
	svc := newJWTService(t)
	shopID := uuid.New()

	token, err := svc.GenerateToken(uuid.New(), user.RoleShopOwner, &shopID)
	require.NoError(t, err)

	validator := usecase.NewTokenValidator(svc)
	actor, err := validator.ValidateToken(token)
	require.NoError(t, err)

	require.NotNil(t, actor.ShopID)
	assert.Equal(t, shopID, *actor.ShopID)
}
