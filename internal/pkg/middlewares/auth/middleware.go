package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"swiftdrop/internal/entities"
	"swiftdrop/pkg/logger"
)

type contextKey string

const emailContextKey contextKey = "auth_email"

const bearerPrefix = "Bearer "

var errNoEmailClaim = errors.New("token has no email claim")

// EmailFromContext возвращает email аутентифицированного пользователя.
// Пустая строка означает, что запрос не прошел через Middleware.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(emailContextKey).(string)
	return email
}

func ContextWithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailContextKey, email)
}

// Middleware проверяет bearer-токен HS256 и кладет email из claims в контекст.
// Без заголовка - 401, с невалидным токеном - 403.
func Middleware(log handlerLogger, jwtSecret string) func(http.Handler) http.Handler {
	secret := []byte(jwtSecret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			email, err := parseEmail(strings.TrimPrefix(header, bearerPrefix), secret)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("invalid auth token")
				w.WriteHeader(http.StatusForbidden)
				return
			}

			ctx := ContextWithEmail(r.Context(), strings.ToLower(email))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пускает дальше только пользователей с одной из ролей.
// Роль берется из хранилища, не из токена: понижение в правах
// действует сразу, не дожидаясь истечения токена.
func RequireRole(log handlerLogger, resolver RoleResolver, roles ...entities.UserRoleType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := EmailFromContext(r.Context())
			if email == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			role, err := resolver.GetRole(r.Context(), email)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("email", email),
				).Error("failed to resolve user role")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.WriteHeader(http.StatusForbidden)
		})
	}
}

func parseEmail(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errNoEmailClaim
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", errNoEmailClaim
	}

	return email, nil
}
