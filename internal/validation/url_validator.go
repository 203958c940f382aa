package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	errpkg "github.com/veranemoloko/cssgrab/internal/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("page_url", validatePageURL)
}

// Struct validates a struct using its `validate` tags.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// PageURL checks an operator-supplied page address. Only emptiness is rejected;
// anything else is handed to the browser as typed.
func PageURL(raw string) error {
	if err := validate.Var(strings.TrimSpace(raw), "required"); err != nil {
		return errpkg.ErrEmptyURL
	}
	return nil
}

// FetchablePageURL checks an address the static engine will GET itself.
func FetchablePageURL(raw string) error {
	if err := validate.Var(raw, "required,page_url"); err != nil {
		return fmt.Errorf("invalid page URL %q: %w", raw, err)
	}
	return nil
}

func validatePageURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}
