package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ActorHeader names the acting user when no JWT secret is configured.
const ActorHeader = "X-Actor"

// ActorMiddleware resolves who is posting and stores it in the request context.
// With a JWT secret the bearer token is required and its subject is the actor.
// Without one the X-Actor header is used, falling back to defaultActor.
func ActorMiddleware(jwtSecret, defaultActor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		var actor string
		if jwtSecret == "" {
			actor = strings.TrimSpace(c.GetHeader(ActorHeader))
			if actor == "" {
				actor = defaultActor
			}
		} else {
			subject, msg := subjectFromBearer(c.GetHeader("Authorization"), jwtSecret)
			if msg != "" {
				logger.Warn("Rejected request token", slog.String("reason", msg), slog.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
				return
			}
			actor = subject
		}

		enrichedLogger := logger.With(slog.String("actor", actor))
		ctx := WithLogger(WithActor(c.Request.Context(), actor), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// subjectFromBearer validates an HMAC signed bearer token and returns its subject.
// On failure the subject is empty and msg is the client facing reason.
func subjectFromBearer(authHeader, jwtSecret string) (subject, msg string) {
	if authHeader == "" {
		return "", "Authorization header required"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", "Authorization header format must be Bearer {token}"
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", "Token has expired"
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return "", "Token not valid yet"
		}
		return "", "Invalid token"
	}

	if !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return "", "Invalid token claims"
	}
	return claims.Subject, ""
}
