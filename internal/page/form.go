package page

import (
	"regexp"
	"strings"

	"github.com/renmarsh/pagefx/internal/dom"
)

type FieldKind int

const (
	Required FieldKind = iota
	Email
)

type Field struct {
	Element dom.Element
	Kind    FieldKind
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateForm checks every field, flags failures with an error class, and
// reports overall validity. Failures never surface as errors; they only mark
// the fields.
func ValidateForm(fields []Field) bool {
	ok := true
	for _, f := range fields {
		value := strings.TrimSpace(f.Element.Attr("value"))
		valid := value != ""
		if f.Kind == Email {
			valid = emailPattern.MatchString(value)
		}
		f.Element.SetClass("error", !valid)
		if !valid {
			ok = false
		}
	}
	return ok
}

// BindForm validates on submit and calls onValid only when every field
// passes.
func BindForm(form dom.Element, fields []Field, onValid func()) func() {
	return form.On("submit", func() {
		if ValidateForm(fields) && onValid != nil {
			onValid()
		}
	})
}
