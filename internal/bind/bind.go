// Package bind decodes and validates operation arguments. Arguments are
// rejected here, before any upstream is contacted.
package bind

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/agentstation/lnmap/pkg/errors"
	"github.com/agentstation/lnmap/pkg/logging"
	"github.com/agentstation/lnmap/pkg/records"
)

// Defaulter is implemented by argument types with default values. Defaults
// are applied before decoding, so only absent fields keep them.
type Defaulter interface {
	SetDefaults()
}

// ValidatorSvc holds a singleton validator and translator.
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Get returns the validator singleton, initializing it on first use.
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerTranslation(v, trans, "min", "{0} must be at least {1}")
		registerTranslation(v, trans, "max", "{0} must be at most {1}")
		registerTranslation(v, trans, "pubkey", "{0} must be a 66-character lowercase hex public key")

		_ = v.RegisterValidation("pubkey", func(fl validator.FieldLevel) bool {
			return records.ValidPubkey(fl.Field().String())
		})

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Decode parses raw JSON arguments into T, applies defaults and validates
// the result. Unknown fields and trailing data are rejected. Empty input is
// treated as an empty object.
func Decode[T any](raw []byte) (T, error) {
	var zero T
	var dst T
	if d, ok := any(&dst).(Defaulter); ok {
		d.SetDefaults()
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		return zero, &errors.ValidationError{Message: "invalid arguments: " + err.Error()}
	}
	if dec.More() {
		return zero, &errors.ValidationError{Message: "unexpected trailing data"}
	}

	if err := Struct(&dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Struct validates an already populated argument value.
func Struct(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		logging.Error().Err(inv).Msg("validator internal error")
		return &errors.ValidationError{Message: "validation error"}
	}
	field, msg := FieldAndMessage(err)
	return &errors.ValidationError{Field: field, Message: msg}
}

// FieldAndMessage returns the first failing field and its translated message.
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

func registerTranslation(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
