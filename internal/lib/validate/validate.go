// Package validate собирает общий валидатор входных данных для HTTP-обработчиков.
//
// Помимо стандартных правил регистрируется правило "password": пароль от 8 до
// 16 символов, минимум одна заглавная буква и один спецсимвол из
// фиксированного набора пунктуации.
package validate

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator"
)

// specialChars — допустимый набор спецсимволов пароля.
const specialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

// New возвращает валидатор с зарегистрированными пользовательскими правилами.
func New() *validator.Validate {
	v := validator.New()
	// ошибка возможна только при пустом теге или nil-функции
	_ = v.RegisterValidation("password", passwordRule)
	return v
}

func passwordRule(fl validator.FieldLevel) bool {
	pass := fl.Field().String()

	runes := []rune(pass)
	if len(runes) < 8 || len(runes) > 16 {
		return false
	}

	var hasUpper, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasSpecial
}
