package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// Host chain account names: a-z, digits 1-5, dots, up to 12 chars.
	chainAccountRe = regexp.MustCompile(`^[a-z1-5.]{1,12}$`)
	reconKeyRe     = regexp.MustCompile(`^[0-9a-fA-F]{1,64}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("chain_account", validateChainAccount)
		_ = v.RegisterValidation("recon_key", validateReconKey)
	}
}

// validateChainAccount checks the host chain account name alphabet.
func validateChainAccount(fl validator.FieldLevel) bool {
	return chainAccountRe.MatchString(fl.Field().String())
}

// validateReconKey accepts hex strings up to 32 bytes. Short strings
// are left-padded when parsed.
func validateReconKey(fl validator.FieldLevel) bool {
	return reconKeyRe.MatchString(fl.Field().String())
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				s := sanitize(elem.String())
				elem.SetString(s)
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
