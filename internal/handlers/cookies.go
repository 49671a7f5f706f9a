package handlers

import (
	"net/http"
	"time"

	"nihongo_diary/internal/config"
	"nihongo_diary/internal/model"
)

// setTokenCookie は HttpOnly / SameSite=Lax のトークン Cookie を設定します
func setTokenCookie(w http.ResponseWriter, cfg *config.JWTConfig, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearTokenCookies は両方のトークン Cookie を max-age=0 で削除します
func clearTokenCookies(w http.ResponseWriter, cfg *config.JWTConfig) {
	for _, name := range []string{model.AccessTokenCookie, model.RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1, // Max-Age=0 として送出される
			HttpOnly: true,
			Secure:   cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
