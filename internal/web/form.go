package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/SscSPs/diary_app/internal/apperrors"
	"github.com/SscSPs/diary_app/internal/core/domain"
)

// ErrSubmitInFlight is returned when Submit is called while a previous submit has not finished.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// Form defaults for a new entry.
const (
	DefaultMood           = 5
	DefaultGratitudeSlots = 3
)

// SaveFunc persists a cleaned draft. id is empty when creating.
type SaveFunc func(ctx context.Context, id string, draft domain.EntryDraft) (*domain.Entry, error)

// SubmitGuard admits one mutation at a time. Forms built with the same guard never save concurrently.
type SubmitGuard struct {
	busy atomic.Bool
}

// TryAcquire claims the guard, reporting false when another mutation holds it.
func (g *SubmitGuard) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

func (g *SubmitGuard) Release() {
	g.busy.Store(false)
}

// Busy reports whether a mutation holds the guard.
func (g *SubmitGuard) Busy() bool {
	return g.busy.Load()
}

// Form is the entry form component. It is safe to Submit from several goroutines;
// only one save runs at a time per guard.
type Form struct {
	ID     string
	Draft  domain.EntryDraft
	Errors map[string]string

	validator *domain.EntryValidator
	guard     *SubmitGuard
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithValidator makes the form share the server's validation rules, including the gratitude cap.
func WithValidator(v *domain.EntryValidator) FormOption {
	return func(f *Form) {
		if v != nil {
			f.validator = v
		}
	}
}

// WithSubmitGuard shares g between forms, e.g. every form served by one page handler.
func WithSubmitGuard(g *SubmitGuard) FormOption {
	return func(f *Form) {
		if g != nil {
			f.guard = g
		}
	}
}

// withToday is used by tests to pin the default date.
func withToday(t time.Time) FormOption {
	return func(f *Form) {
		if f.ID == "" {
			f.Draft.Date = t.Format(domain.DateLayout)
		}
	}
}

// NewForm builds a form for existing, or a blank form dated today when existing is nil.
func NewForm(existing *domain.Entry, opts ...FormOption) *Form {
	f := &Form{
		Errors:    map[string]string{},
		validator: domain.NewEntryValidator(domain.DefaultGratitudeLimit),
		guard:     &SubmitGuard{},
	}
	if existing != nil {
		f.ID = existing.ID
		f.Draft = domain.DraftFromEntry(*existing)
	} else {
		f.Draft = domain.EntryDraft{
			Date:      time.Now().Format(domain.DateLayout),
			Mood:      DefaultMood,
			Gratitude: make([]string, DefaultGratitudeSlots),
		}
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// IsEdit reports whether the form updates an existing entry.
func (f *Form) IsEdit() bool {
	return f.ID != ""
}

// Bind reads a posted HTML form. gratitude may repeat.
func (f *Form) Bind(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("failed to parse form: %w", err)
	}
	mood, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("mood")))
	if err != nil {
		mood = 0
	}
	f.ID = strings.TrimSpace(r.PostFormValue("id"))
	f.Draft = domain.EntryDraft{
		Date:           r.PostFormValue("date"),
		Mood:           mood,
		Learned:        r.PostFormValue("learned"),
		Improvements:   r.PostFormValue("improvements"),
		Gratitude:      append([]string(nil), r.PostForm["gratitude"]...),
		LookingForward: r.PostFormValue("lookingForward"),
		News:           r.PostFormValue("news"),
	}
	return nil
}

// Validate checks the draft with the same rules as the server and records
// one message per failing field in Errors.
func (f *Form) Validate() []apperrors.FieldError {
	fields := f.validator.Check(f.Draft)
	f.Errors = make(map[string]string, len(fields))
	for _, fe := range fields {
		f.Errors[fe.Field] = fe.Message
	}
	return fields
}

// Submit validates, drops blank gratitude items and calls save with the cleaned draft.
// Text fields reach save as entered.
// Nothing is saved when validation fails.
func (f *Form) Submit(ctx context.Context, save SaveFunc) (*domain.Entry, error) {
	if !f.guard.TryAcquire() {
		return nil, ErrSubmitInFlight
	}
	defer f.guard.Release()

	if fields := f.Validate(); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}
	return save(ctx, f.ID, f.Draft.Clean())
}

// Submitting reports whether a save is running.
func (f *Form) Submitting() bool {
	return f.guard.Busy()
}

// GratitudeSlots returns the gratitude inputs to render, padded with blanks
// up to the default slot count and one spare slot when the cap allows.
func (f *Form) GratitudeSlots() []string {
	slots := append([]string(nil), f.Draft.Gratitude...)
	for len(slots) < DefaultGratitudeSlots {
		slots = append(slots, "")
	}
	if limit := f.validator.GratitudeLimit(); limit == 0 || len(slots) < limit {
		if slots[len(slots)-1] != "" {
			slots = append(slots, "")
		}
	}
	return slots
}

// MoodOptions lists the selectable mood scores.
func (f *Form) MoodOptions() []int {
	opts := make([]int, 0, domain.MaxMood-domain.MinMood+1)
	for m := domain.MinMood; m <= domain.MaxMood; m++ {
		opts = append(opts, m)
	}
	return opts
}
