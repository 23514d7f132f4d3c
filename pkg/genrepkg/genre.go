// Package genrepkg provides common book genre related functionality for apps.
package genrepkg

import "github.com/go-playground/validator/v10"

// Constants for all supported genres.
const (
	Romance   = "ROMANCE"
	Fiction   = "FICTION"
	Fantasy   = "FANTASY"
	Horror    = "HORROR"
	Biography = "BIOGRAPHY"
)

// SupportedGenres holds all the supported genres.
var SupportedGenres = []string{
	Romance,
	Fiction,
	Fantasy,
	Horror,
	Biography,
}

// IsSupportedGenre returns true if the genre is supported.
func IsSupportedGenre(genre string) bool {
	for _, g := range SupportedGenres {
		if g == genre {
			return true
		}
	}

	return false
}

// ValidGenre validates whether the genre is supported.
var ValidGenre validator.Func = func(fl validator.FieldLevel) bool {
	if g, ok := fl.Field().Interface().(string); ok {
		return IsSupportedGenre(g)
	}
	return false
}
