package dashboard

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// newValidator проверяет только обязательные поля черновиков
func newValidator() *validator.Validate {
	v := validator.New()
	// notblank: строка из одних пробелов не считается заполненной
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

func noopReporter(string) {}
