package jobs

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"jobmate/board-service/internal/model"
)

// JobDraft is an employer's job post before it is accepted.
type JobDraft struct {
	Title        string   `json:"title" validate:"required,max=120"`
	Company      string   `json:"company" validate:"required,max=120"`
	Location     string   `json:"location" validate:"max=120"`
	Distance     string   `json:"distance" validate:"max=40"`
	Remote       bool     `json:"remote"`
	Category     string   `json:"category" validate:"required,job_category"`
	Type         string   `json:"type" validate:"required,oneof=full-time part-time contract remote"`
	Salary       string   `json:"salary" validate:"max=80"`
	Description  string   `json:"description" validate:"required,max=5000"`
	Requirements []string `json:"requirements" validate:"max=20,dive,required,max=200"`
	Skills       []string `json:"skills" validate:"max=30,dive,required,max=60"`
}

// ValidationError lists the fields a request got wrong.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("job_category", func(fl validator.FieldLevel) bool {
		c := fl.Field().String()
		return c != model.AllCategories && slices.Contains(model.Categories, c)
	})
	return v
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "max":
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "job_category":
		return "unknown category"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// sanitizer strips every HTML tag from user text and keeps it as plain text.
type sanitizer struct {
	policy *bluemonday.Policy
}

func newSanitizer() *sanitizer {
	return &sanitizer{policy: bluemonday.StrictPolicy()}
}

// maxSanitizePasses bounds the unescape loop for nested entity encodings.
const maxSanitizePasses = 8

// text strips markup and decodes entities until the value is stable, so
// markup smuggled in as entities is stripped too. Input still changing after
// maxSanitizePasses is returned escaped.
func (s *sanitizer) text(in string) string {
	out := in
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(s.policy.Sanitize(out))
		if next == out {
			return strings.TrimSpace(out)
		}
		out = next
	}
	return strings.TrimSpace(s.policy.Sanitize(out))
}

func (s *sanitizer) list(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = s.text(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *sanitizer) draft(d JobDraft) JobDraft {
	d.Title = s.text(d.Title)
	d.Company = s.text(d.Company)
	d.Location = s.text(d.Location)
	d.Distance = s.text(d.Distance)
	d.Salary = s.text(d.Salary)
	d.Description = s.text(d.Description)
	d.Requirements = s.list(d.Requirements)
	d.Skills = s.list(d.Skills)
	return d
}

// BlockedTerm returns the json name of the first draft field (title, company,
// then description) containing one of terms, case-insensitively, and the term.
func BlockedTerm(d JobDraft, terms []string) (field, term string, found bool) {
	fields := []struct{ name, value string }{
		{"title", d.Title},
		{"company", d.Company},
		{"description", d.Description},
	}
	for _, f := range fields {
		value := strings.ToLower(f.value)
		for _, t := range terms {
			if t != "" && strings.Contains(value, strings.ToLower(t)) {
				return f.name, t, true
			}
		}
	}
	return "", "", false
}
