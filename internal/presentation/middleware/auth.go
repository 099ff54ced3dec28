package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"mediavault/internal/domain/dto"
)

// EmailKey is where the middleware stores the authenticated identity on
// the request context.
const EmailKey = "email"

// Session gates protected routes behind a Bearer session token.
// Registration, login and the public listing never pass through here.
func Session(secret string) echo.MiddlewareFunc {
	key := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get("Authorization")

			token, err := extractToken(authHeader)
			if err != nil {
				return unauthorized(ctx, err.Error())
			}

			email, err := verifyToken(token, key)
			if err != nil {
				return unauthorized(ctx, "invalid or expired session")
			}

			ctx.Set(EmailKey, email)

			return next(ctx)
		}
	}
}

func extractToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("missing Authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("missing Bearer header prefix")
	}

	return strings.TrimPrefix(authHeader, "Bearer "), nil
}

func verifyToken(token string, key []byte) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return key, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid token")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("missing subject claim")
	}

	return subject, nil
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Kind:  "unauthenticated",
	})
}
