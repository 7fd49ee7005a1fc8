package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/Asamoah4284/PENNIT-sub001/internal/identity"
	"github.com/Asamoah4284/PENNIT-sub001/internal/logger"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// JWTSecret is the HMAC key viewer session tokens are signed with
	JWTSecret string
	APIKeys   []string
}

// ViewerIdentity returns a gin middleware that resolves the authenticated
// viewer from a Bearer token, when one is present. Requests without a token,
// or with an invalid one, proceed anonymously; attribution then falls back to
// the client IP.
func ViewerIdentity(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.Next()
			return
		}

		subject, err := validateJWT(parts[1], cfg.JWTSecret)
		if err != nil {
			logger.Debug("viewer token rejected, proceeding anonymously",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err),
			)
			c.Next()
			return
		}

		c.Set(identity.ContextUserIDKey, subject)
		c.Next()
	}
}

// APIKeyAuth returns a gin middleware requiring an API key.
// Used for the settlement trigger endpoints.
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		err := authenticateAPIKey(authHeader, apiKeyMap)
		if err != nil {
			logger.Warn("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "unauthorized",
					"message": "Authentication failed",
					"details": err.Error(),
				},
			})
			return
		}

		c.Next()
	}
}

func authenticateAPIKey(authHeader string, validKeys map[string]bool) error {
	if len(validKeys) == 0 {
		return errors.New("no API keys configured")
	}
	if authHeader == "" {
		return errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return errors.New("invalid Authorization header format")
	}
	if !strings.EqualFold(parts[0], "apikey") {
		return fmt.Errorf("unsupported authorization type: %s", parts[0])
	}
	if !validKeys[parts[1]] {
		return errors.New("invalid API key")
	}

	return nil
}

// validateJWT validates an HMAC-signed JWT and returns its subject
func validateJWT(tokenString string, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT secret not configured")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}

	return claims.Subject, nil
}
