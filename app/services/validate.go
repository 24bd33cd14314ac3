package services

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// storable reports whether s can be bound as a text parameter. PostgreSQL
// rejects NUL bytes and invalid UTF-8 instead of matching nothing.
func storable(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}
