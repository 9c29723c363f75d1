package domain

import (
	"errors"
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// ContentKind selects the scaffold of a new document.
type ContentKind string

const (
	// KindPost is a dated document under content/posts.
	KindPost ContentKind = "post"
	// KindPage is an undated document at the top of content/.
	KindPage ContentKind = "page"
)

// ParseContentKind validates s as a ContentKind.
func ParseContentKind(s string) (ContentKind, error) {
	switch k := ContentKind(s); k {
	case KindPost, KindPage:
		return k, nil
	default:
		return "", errors.Join(ErrInvalidContentName, zerr.With(zerr.New("content kind must be post or page"), "kind", s))
	}
}

// ContentSlug derives a file name stem from a title: lowercased, spaces and
// slashes become dashes, everything but letters, digits and dashes is dropped.
func ContentSlug(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r == ' ' || r == '/':
			b.WriteRune('-')
		case r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CheckStatus is the outcome of one project check.
type CheckStatus int

const (
	// CheckOK means the check passed.
	CheckOK CheckStatus = iota
	// CheckWarn means something optional is missing.
	CheckWarn
	// CheckFail means the project cannot be built as is.
	CheckFail
)

// Check is one line of a Diagnosis.
type Check struct {
	Name   string
	Detail string
	Status CheckStatus
}

// Diagnosis is the result of checking a project's dependencies and layout.
type Diagnosis struct {
	Checks []Check
}

// Add appends a check.
func (d *Diagnosis) Add(status CheckStatus, name, detail string) {
	d.Checks = append(d.Checks, Check{Name: name, Detail: detail, Status: status})
}

// Failed reports whether any check failed.
func (d *Diagnosis) Failed() bool {
	for _, c := range d.Checks {
		if c.Status == CheckFail {
			return true
		}
	}
	return false
}

// ConvertResult is the outcome of converting one file into one format.
type ConvertResult struct {
	Format string
	Path   string
	Err    error
}
