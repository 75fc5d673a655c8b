package webutil

import (
	"errors"
	"log"
	"math"
	"reflect"
	"strings"

	"go_workout_tracker/internal/model"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator is shared by all handlers.
var Validator *validator.Validate

// Trans renders validation errors as English messages.
var Trans ut.Translator

func init() {
	Validator = validator.New()

	// report json names ("programId") instead of Go field names
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := Validator.RegisterValidation("rpe_step", validateRPEStep); err != nil {
		log.Fatal(err)
	}

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	registerTranslation("required", "{0} is required")
	registerTranslation("rpe_step", "{0} must be a multiple of 0.5")
}

func registerTranslation(tag, msg string) {
	err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, fe.Field())
		return t
	})
	if err != nil {
		log.Fatal(err)
	}
}

// validateRPEStep accepts half-point RPE values such as 7, 7.5 and 8.
func validateRPEStep(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return math.Mod(v*2, 1) == 0
}

// ValidateStruct validates req and converts the first failure into an
// AppError that maps to 400.
func ValidateStruct(req interface{}) error {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		first := validationErrors[0]
		return model.NewAppError("VALIDATION_ERROR", first.Translate(Trans), model.ErrInvalidInput)
	}
	return err
}
