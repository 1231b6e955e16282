package middleware

import (
	"fmt"
	"strings"
	"time"

	"elm/config"
	"elm/database"
	"elm/services"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GenerateJWT generates a JWT token for the user and registers it in the
// outstanding-token table so a later role change can revoke it
func GenerateJWT(userID uint, name, role, email string) (string, error) {
	jti := uuid.NewString()
	expiresAt := time.Now().Add(24 * time.Hour)

	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"role":   role,
		"email":  email,
		"jti":    jti,
		"iat":    time.Now().Unix(),
		"exp":    expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.AppConfig.JWTKey))
	if err != nil {
		return "", err
	}

	if err := services.RecordToken(database.Database.Db, userID, jti, expiresAt); err != nil {
		return "", err
	}
	return signed, nil
}

// JWTMiddleware is a middleware to check for valid JWT token in the request.
// Tokens revoked by a role change are rejected even if still within expiry.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}
	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil || claims["jti"] == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	userID := uint(claims["userId"].(float64)) // JWT numbers decode as float64
	jti, _ := claims["jti"].(string)

	revoked, err := services.IsTokenRevoked(database.Database.Db, userID, jti)
	if err != nil {
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to verify token!", nil)
	}
	if revoked {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Token has been revoked", nil)
	}

	c.Locals("userId", userID)
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
