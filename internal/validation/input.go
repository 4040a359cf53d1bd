package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Константы валидации
const (
	MinFullNameLength     = 2
	MaxFullNameLength     = 100
	MaxBarCouncilIDLength = 50
	MaxBioLength          = 1000
	MaxExperienceYears    = 70
	PhoneDigits           = 10
)

var (
	fullNameRegex     = regexp.MustCompile(`^[\p{L}\p{M}\s\-.,'()]+$`)
	barCouncilIDRegex = regexp.MustCompile(`^[A-Za-z0-9/\-. ]+$`)
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateFullName проверяет имя, которое видят клиенты в каталоге и в описании платежа.
func ValidateFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("имя обязательно")
	}
	if err := ValidateLength("имя", name, MinFullNameLength, MaxFullNameLength); err != nil {
		return err
	}
	if !fullNameRegex.MatchString(name) {
		return fmt.Errorf("имя содержит недопустимые символы")
	}
	return nil
}

// ValidateBarCouncilID проверяет регистрационный номер адвоката, например MH/1234/2015.
func ValidateBarCouncilID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("номер в Bar Council обязателен")
	}
	if err := ValidateLength("номер в Bar Council", id, 0, MaxBarCouncilIDLength); err != nil {
		return err
	}
	if !barCouncilIDRegex.MatchString(id) {
		return fmt.Errorf("номер в Bar Council содержит недопустимые символы")
	}
	return nil
}

// ValidateBio проверяет биографию.
func ValidateBio(bio string) error {
	return ValidateLength("биография", strings.TrimSpace(bio), 0, MaxBioLength)
}

// ValidateExperienceYears проверяет стаж, nil - стаж не указан.
func ValidateExperienceYears(years *int) error {
	if years != nil && (*years < 0 || *years > MaxExperienceYears) {
		return fmt.Errorf("стаж должен быть от 0 до %d лет", MaxExperienceYears)
	}
	return nil
}

// IsPhone сообщает, что строка состоит ровно из 10 цифр (мобильный номер без +91).
func IsPhone(s string) bool {
	if len(s) != PhoneDigits {
		return false
	}
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}
