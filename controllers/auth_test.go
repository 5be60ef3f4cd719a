package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camiloreyes/servimarket-app/middleware"
	"github.com/camiloreyes/servimarket-app/models"
	"github.com/camiloreyes/servimarket-app/utils"
)

func protectedTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/ping", middleware.Protected(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("userID"),
			"role":    c.Locals("role"),
		})
	})
	return app
}

func TestAccessTokenClaims_CarryRole(t *testing.T) {
	user := models.User{ID: 7, Email: "ana@example.com"}
	role := models.Role{ID: 2, Name: models.RoleProvider}

	claims := accessTokenClaims(user, role)

	assert.Equal(t, user.ID, claims["id"])
	assert.Equal(t, role, claims["role"])
	assert.Equal(t, role.ID, claims["role_id"])
}

// Every access token, including ones minted by the refresh endpoint, must
// carry the role claims Protected() requires.
func TestAccessTokenAcceptedByProtected(t *testing.T) {
	user := models.User{ID: 7, Email: "ana@example.com"}
	role := models.Role{ID: 1, Name: models.RoleClient}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessTokenClaims(user, role))
	signed, err := token.SignedString(utils.JWTSecret())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := protectedTestApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Refresh tokens themselves carry only id/email/exp and must not be
// usable as access tokens.
func TestRoleLessTokenRejectedByProtected(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    uint(7),
		"email": "ana@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(utils.JWTSecret())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := protectedTestApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
