package cookie

import (
	"net/http"
	"strings"
	"time"

	"facility-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"

	bearerPrefix = "Bearer "
)

// Jar writes the http-only token cookies with the configured domain and SameSite mode.
type Jar struct {
	cfg config.CookieConfig
}

func NewJar(cfg config.CookieConfig) *Jar {
	return &Jar{cfg: cfg}
}

func (j *Jar) SetTokens(c *gin.Context, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	j.set(c, AccessTokenCookieName, accessToken, int(accessTTL.Seconds()))
	j.set(c, RefreshTokenCookieName, refreshToken, int(refreshTTL.Seconds()))
}

func (j *Jar) ClearTokens(c *gin.Context) {
	j.set(c, AccessTokenCookieName, "", -1)
	j.set(c, RefreshTokenCookieName, "", -1)
}

func (j *Jar) set(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(sameSiteMode(j.cfg.SameSite))
	c.SetCookie(name, value, maxAge, "/", j.cfg.Domain, j.cfg.Secure, true)
}

// AccessToken prefers the cookie and falls back to an Authorization bearer header.
func AccessToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}
	return ""
}

func RefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSiteMode(sameSite string) http.SameSite {
	switch strings.ToLower(sameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
