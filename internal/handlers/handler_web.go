package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/diary_app/internal/apperrors"
	"github.com/SscSPs/diary_app/internal/core/domain"
	portssvc "github.com/SscSPs/diary_app/internal/core/ports/services"
	"github.com/SscSPs/diary_app/internal/dto"
	"github.com/SscSPs/diary_app/internal/middleware"
	"github.com/SscSPs/diary_app/internal/web"
	"github.com/gin-gonic/gin"
)

// notices maps the ?notice= codes set by redirects to banners.
var notices = map[string]web.Banner{
	"created":       {Kind: web.BannerSuccess, Message: "Entry saved"},
	"updated":       {Kind: web.BannerSuccess, Message: "Entry updated"},
	"deleted":       {Kind: web.BannerSuccess, Message: "Entry deleted"},
	"missing":       {Kind: web.BannerError, Message: "Entry not found"},
	"delete-failed": {Kind: web.BannerError, Message: "Failed to delete entry"},
	"busy":          {Kind: web.BannerError, Message: "Another change is still saving, please retry"},
}

// pageHandler serves the server-rendered diary page. Saves and deletes from the page share one guard.
type pageHandler struct {
	entryService portssvc.EntrySvcFacade
	guard        *web.SubmitGuard
}

// RegisterWebRoutes registers the HTML page routes. The engine must have web.Templates() loaded.
func RegisterWebRoutes(r gin.IRoutes, entryService portssvc.EntrySvcFacade) {
	h := &pageHandler{entryService: entryService, guard: &web.SubmitGuard{}}

	r.GET("/", h.index)
	r.GET("/entries/:id/edit", h.edit)
	r.POST("/entries/form", h.submit)
	r.POST("/entries/:id/delete", h.delete)
}

func redirectWithNotice(c *gin.Context, code string) {
	c.Redirect(http.StatusSeeOther, "/?notice="+url.QueryEscape(code))
}

// render loads a fresh list and renders the page. A failed fetch shows an empty list and an error banner.
func (h *pageHandler) render(c *gin.Context, status int, form *web.Form, banner *web.Banner) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.entryService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load entries for page", slog.String("error", err.Error()))
		entries = []domain.Entry{}
		msg := "Failed to load entries"
		if errors.Is(err, apperrors.ErrTimeout) {
			msg = "Timed out listing entries"
		}
		if banner == nil || banner.Kind != web.BannerError {
			banner = &web.Banner{Kind: web.BannerError, Message: msg}
		}
	}

	c.HTML(status, "index.html", web.Page{
		Form:           form,
		List:           web.NewListView(entries, h.guard.Busy()),
		Chart:          web.NewMoodChart(entries),
		Banner:         banner,
		GratitudeLimit: h.entryService.Validator().GratitudeLimit(),
	})
}

func (h *pageHandler) newForm(existing *domain.Entry) *web.Form {
	return web.NewForm(existing, web.WithValidator(h.entryService.Validator()), web.WithSubmitGuard(h.guard))
}

func (h *pageHandler) index(c *gin.Context) {
	var banner *web.Banner
	if b, ok := notices[c.Query("notice")]; ok {
		banner = &b
	}
	h.render(c, http.StatusOK, h.newForm(nil), banner)
}

func (h *pageHandler) edit(c *gin.Context) {
	entryID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			redirectWithNotice(c, "missing")
			return
		}
		logger.Error("Failed to load entry for editing", slog.String("error", err.Error()))
		h.render(c, http.StatusOK, h.newForm(nil), &web.Banner{Kind: web.BannerError, Message: "Failed to load entry"})
		return
	}

	h.render(c, http.StatusOK, h.newForm(entry), nil)
}

func (h *pageHandler) save(ctx context.Context, id string, draft domain.EntryDraft) (*domain.Entry, error) {
	req := dto.EntryRequestFromDraft(draft)
	if id == "" {
		return h.entryService.CreateEntry(ctx, req)
	}
	return h.entryService.UpdateEntry(ctx, id, req)
}

func (h *pageHandler) submit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	form := h.newForm(nil)
	if err := form.Bind(c.Request); err != nil {
		logger.Warn("Failed to bind entry form", slog.String("error", err.Error()))
		h.render(c, http.StatusBadRequest, form, &web.Banner{Kind: web.BannerError, Message: "Invalid form submission"})
		return
	}

	_, err := form.Submit(c.Request.Context(), h.save)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			var verr *apperrors.ValidationError
			msg := "Please fill in every required field"
			if errors.As(err, &verr) {
				for _, fe := range verr.Fields {
					form.Errors[fe.Field] = fe.Message
				}
				msg += ": " + verr.Details()
			}
			h.render(c, http.StatusBadRequest, form, &web.Banner{Kind: web.BannerError, Message: msg})
		case errors.Is(err, apperrors.ErrNotFound):
			redirectWithNotice(c, "missing")
		case errors.Is(err, web.ErrSubmitInFlight):
			h.render(c, http.StatusConflict, form, &web.Banner{Kind: web.BannerError, Message: "Already saving, please wait"})
		default:
			logger.Error("Failed to save entry from form", slog.String("error", err.Error()))
			h.render(c, http.StatusOK, form, &web.Banner{Kind: web.BannerError, Message: "Failed to save entry"})
		}
		return
	}

	if form.IsEdit() {
		redirectWithNotice(c, "updated")
		return
	}
	redirectWithNotice(c, "created")
}

func (h *pageHandler) delete(c *gin.Context) {
	entryID := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	if !h.guard.TryAcquire() {
		redirectWithNotice(c, "busy")
		return
	}
	defer h.guard.Release()

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			redirectWithNotice(c, "missing")
			return
		}
		logger.Error("Failed to delete entry from page", slog.String("error", err.Error()))
		redirectWithNotice(c, "delete-failed")
		return
	}
	redirectWithNotice(c, "deleted")
}
