package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/diary_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// fieldOrder is the order in which field errors are reported.
var fieldOrder = []string{"date", "mood", "learned", "improvements", "gratitude", "lookingForward", "news"}

// EntryValidator checks entry drafts. Create and update paths share one instance.
type EntryValidator struct {
	validate       *validator.Validate
	gratitudeLimit int
}

// NewEntryValidator builds a validator. gratitudeLimit <= 0 disables the gratitude cap.
func NewEntryValidator(gratitudeLimit int) *EntryValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(fmt.Sprintf("register calendardate validation: %v", err))
	}
	if gratitudeLimit < 0 {
		gratitudeLimit = 0
	}
	return &EntryValidator{validate: v, gratitudeLimit: gratitudeLimit}
}

// GratitudeLimit reports the active cap, 0 meaning unlimited.
func (ev *EntryValidator) GratitudeLimit() int {
	return ev.gratitudeLimit
}

// Check normalizes the draft and returns every field error in field order.
// An empty result means the draft is valid.
func (ev *EntryValidator) Check(draft EntryDraft) []apperrors.FieldError {
	d := draft.Normalize()
	byField := make(map[string]apperrors.FieldError)

	if err := ev.validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []apperrors.FieldError{{Field: "entry", Message: err.Error()}}
		}
		for _, fe := range verrs {
			byField[fe.Field()] = apperrors.FieldError{Field: fe.Field(), Message: messageFor(fe)}
		}
	}

	if _, failed := byField["gratitude"]; !failed && ev.gratitudeLimit > 0 && len(d.Gratitude) > ev.gratitudeLimit {
		byField["gratitude"] = apperrors.FieldError{
			Field:   "gratitude",
			Message: fmt.Sprintf("gratitude allows at most %d items", ev.gratitudeLimit),
		}
	}

	out := make([]apperrors.FieldError, 0, len(byField))
	for _, name := range fieldOrder {
		if fe, ok := byField[name]; ok {
			out = append(out, fe)
		}
	}
	return out
}

// Validate returns the cleaned input, or a *apperrors.ValidationError listing every offending field.
func (ev *EntryValidator) Validate(draft EntryDraft) (EntryInput, error) {
	if fields := ev.Check(draft); len(fields) > 0 {
		return EntryInput{}, apperrors.NewValidationError(fields)
	}
	d := draft.Clean()
	date, err := ParseDate(d.Date)
	if err != nil {
		// unreachable once calendardate passed
		return EntryInput{}, apperrors.NewValidationError([]apperrors.FieldError{{Field: "date", Message: err.Error()}})
	}
	return EntryInput{
		Date:           date,
		Mood:           d.Mood,
		Learned:        d.Learned,
		Improvements:   d.Improvements,
		Gratitude:      d.Gratitude,
		LookingForward: d.LookingForward,
		News:           d.News,
	}, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "date":
		if fe.Tag() == "calendardate" {
			return "date must be a calendar date (YYYY-MM-DD)"
		}
		return "date is required"
	case "mood":
		if fe.Tag() == "required" {
			return "mood is required"
		}
		return fmt.Sprintf("mood must be between %d and %d", MinMood, MaxMood)
	case "gratitude":
		return "at least one gratitude item is required"
	default:
		return fe.Field() + " is required"
	}
}
