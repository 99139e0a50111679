package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/diary_app/internal/middleware"
	"github.com/SscSPs/diary_app/internal/utils"
	"github.com/SscSPs/diary_app/internal/web"
	"github.com/gin-gonic/gin"
)

// sessionHandler trades a bearer token for the cookie the diary page authenticates with.
type sessionHandler struct {
	jwtSecret    string
	secureCookie bool
}

// RegisterSessionRoutes registers GET/POST /session and POST /session/logout.
func RegisterSessionRoutes(r gin.IRoutes, jwtSecret string, secureCookie bool) {
	h := &sessionHandler{jwtSecret: jwtSecret, secureCookie: secureCookie}

	r.GET("/session", h.show)
	r.POST("/session", h.create)
	r.POST("/session/logout", h.logout)
}

func (h *sessionHandler) show(c *gin.Context) {
	if h.jwtSecret == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "session.html", web.SessionPage{})
}

func (h *sessionHandler) create(c *gin.Context) {
	if h.jwtSecret == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	token := strings.TrimSpace(c.PostForm("token"))
	claims, err := utils.ParseAccessToken(token, h.jwtSecret)
	if err != nil || claims.Subject == "" {
		if err != nil {
			logger.Warn("Rejected session token", slog.String("error", err.Error()))
		}
		c.HTML(http.StatusUnauthorized, "session.html", web.SessionPage{Error: "Invalid or expired token"})
		return
	}

	maxAge := 0
	if claims.ExpiresAt != nil {
		maxAge = int(time.Until(claims.ExpiresAt.Time).Seconds())
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", h.secureCookie, true)
	logger.Info("Session started", slog.String("subject", claims.Subject))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *sessionHandler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.secureCookie, true)
	c.Redirect(http.StatusSeeOther, "/session")
}
