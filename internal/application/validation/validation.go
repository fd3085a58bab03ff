// Package validation normaliza y valida texto de entrada.
package validation

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean recorta espacios y normaliza a NFC para que dos textos visualmente
// iguales se almacenen y comparen con los mismos bytes.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Blank indica si el texto queda vacío tras recortar espacios.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// AnyBlank indica si alguno de los textos está vacío.
func AnyBlank(values ...string) bool {
	for _, v := range values {
		if Blank(v) {
			return true
		}
	}
	return false
}
