package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rexonmold/shop-backend/internal/cfg"
	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

type ctxKey int

const (
	sessionIDKey ctxKey = iota
	claimsKey
)

// authCookieName — cookie с JWT-токеном сессии пользователя.
const authCookieName = "auth_token"

// Middleware навешивает на запросы сессию корзины и данные пользователя.
type Middleware struct {
	sessionCfg *cfg.SessionCfg
	tokens     usecase.TokenManager
	logger     logger.Logger
}

func NewMiddleware(sessionCfg *cfg.SessionCfg, tokens usecase.TokenManager, logger logger.Logger) *Middleware {
	return &Middleware{
		sessionCfg: sessionCfg,
		tokens:     tokens,
		logger:     logger,
	}
}

// Session выдаёт посетителю opaque-токен сессии в cookie (если его ещё нет)
// и кладёт его в контекст запроса. Токен — ключ корзины в Redis.
func (m *Middleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string

		cookie, err := r.Cookie(m.sessionCfg.CookieName)
		if err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     m.sessionCfg.CookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(m.sessionCfg.CookieTTL.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth распознаёт пользователя по JWT из cookie или заголовка Authorization.
// Анонимные запросы пропускаются без данных пользователя.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			// Просроченный или битый токен равнозначен анонимному запросу
			m.logger.Debugf("invalid session token: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireStaff пускает дальше только аутентифицированных staff-пользователей.
func (m *Middleware) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromCtx(r.Context())
		if claims == nil {
			WriteError(w, e.ErrLoginRequired)
			return
		}
		if !claims.IsStaff {
			WriteError(w, e.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SessionFromCtx возвращает токен сессии, положенный middleware'ом Session.
func SessionFromCtx(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionIDKey).(string)
	return sessionID
}

// ClaimsFromCtx возвращает данные пользователя или nil для анонимного запроса.
func ClaimsFromCtx(ctx context.Context) *usecase.TokenClaims {
	claims, _ := ctx.Value(claimsKey).(*usecase.TokenClaims)
	return claims
}

// redirectToLogin отправляет анонимного пользователя на страницу входа
// с возвратом на исходный путь.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login/?next="+url.QueryEscape(r.URL.Path), http.StatusFound)
}

// setAuthCookie выдаёт cookie с токеном сессии пользователя.
func setAuthCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// tokenFromRequest достаёт JWT из заголовка Authorization или cookie.
func tokenFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	if cookie, err := r.Cookie(authCookieName); err == nil {
		return cookie.Value
	}

	return ""
}
