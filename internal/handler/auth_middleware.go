package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const CtxUserID ctxKey = "userId"

// Auth devuelve un middleware que delega la validación del bearer
// token al servidor de auth externo y mete el user_id en el contexto.
// Este servicio no valida credenciales por su cuenta: el auth server
// es una caja negra que responde 200/401.
func Auth(authURL string) func(http.Handler) http.Handler {
	client := &http.Client{Timeout: 5 * time.Second}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing or invalid Authorization header")
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, authURL+"/is_authenticated", nil)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "something was broke")
				return
			}
			req.Header.Set("Authorization", "Bearer "+tokenStr)

			resp, err := client.Do(req)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "something was broke")
				return
			}
			resp.Body.Close()

			if resp.StatusCode == http.StatusUnauthorized {
				writeError(w, http.StatusUnauthorized, "You are not authenticated")
				return
			}
			if resp.StatusCode != http.StatusOK {
				writeError(w, http.StatusInternalServerError, "something was broke")
				return
			}

			userID, err := UserIDFromToken(tokenStr)
			if err != nil || userID == "" {
				writeError(w, http.StatusUnauthorized, "invalid token claims")
				return
			}

			ctx := context.WithValue(r.Context(), CtxUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromToken saca el user_id del claim "sub" sin verificar la
// firma: la validez del token ya la confirmó el servidor de auth.
// El auth server serializa el sub como JSON {"user_id": "<uuid>"}.
func UserIDFromToken(tokenStr string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	sub, _ := claims["sub"].(string)

	var payload struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal([]byte(sub), &payload); err != nil {
		return "", err
	}
	return payload.UserID, nil
}

// UserIDFromContext helper para sacar el user_id del contexto.
func UserIDFromContext(ctx context.Context) string {
	if v := ctx.Value(CtxUserID); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
