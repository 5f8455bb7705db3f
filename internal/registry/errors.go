package registry

import "errors"

var (
	// ErrInvalidURL - url не абсолютный http или https URL.
	ErrInvalidURL = errors.New("invalid url")

	// ErrInvalidCodeFormat - код не из 6-8 латинских букв или цифр.
	ErrInvalidCodeFormat = errors.New("invalid code format")

	// ErrCodeExists - код уже занят активной ссылкой.
	ErrCodeExists = errors.New("code exists")

	// ErrGenerationExhausted - свободный код не найден за отведённые попытки.
	ErrGenerationExhausted = errors.New("could not generate unique code")
)
