// Package form holds the typed representations of submitted entity forms
// and validates them before any store mutation is attempted.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/noah-isme/school-records/internal/models"
)

// Errors maps a form field name to a human-readable message.
type Errors map[string]string

// Add records msg for field unless the field already failed.
func (e Errors) Add(field, msg string) {
	if _, exists := e[field]; !exists {
		e[field] = msg
	}
}

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Choices holds the allowed options for choice-constrained fields, keyed
// by form field name.
type Choices map[string][]models.Choice

// Form is implemented by every entity form.
type Form interface {
	// ChoiceValues returns the submitted value of each choice-constrained field.
	ChoiceValues() map[string]string
}

// Validator checks forms against their validate tags and choice lists.
type Validator struct {
	validate *govalidator.Validate
	trans    ut.Translator
}

// NewValidator builds a Validator with English messages. Field names in
// messages come from the form tags.
func NewValidator() *Validator {
	v := govalidator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	return &Validator{validate: v, trans: trans}
}

// Validate trims every string field of f (when f is a pointer), applies the
// tag rules and then the choice lists. It never touches the store.
func (v *Validator) Validate(f Form, choices Choices) Errors {
	trimStrings(reflect.ValueOf(f))

	errs := Errors{}
	if err := v.validate.Struct(f); err != nil {
		var ve govalidator.ValidationErrors
		if !errors.As(err, &ve) {
			errs.Add("form", err.Error())
			return errs
		}
		for _, fe := range ve {
			msg := strings.Replace(fe.Translate(v.trans), fe.Field(), label(fe.Field()), 1)
			errs.Add(fe.Field(), msg)
		}
	}

	for field, value := range f.ChoiceValues() {
		if value == "" {
			continue
		}
		if !hasChoice(choices[field], value) {
			errs.Add(field, fmt.Sprintf("%s must be one of the listed options", label(field)))
		}
	}
	return errs
}

func hasChoice(choices []models.Choice, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}

// label turns a field name such as date_of_birth into "Date of birth".
func label(field string) string {
	words := strings.ReplaceAll(field, "_", " ")
	if words == "" {
		return words
	}
	return strings.ToUpper(words[:1]) + words[1:]
}

func trimStrings(v reflect.Value) {
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(strings.TrimSpace(field.String()))
		case reflect.Struct:
			trimStrings(field.Addr())
		}
	}
}
