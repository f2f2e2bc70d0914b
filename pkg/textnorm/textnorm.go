// Package textnorm normaliza texto para búsquedas: minúsculas y sin diacríticos.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize convierte a minúsculas y elimina las marcas diacríticas ("Café" → "cafe").
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Contains indica si needle aparece en alguno de los campos, ignorando mayúsculas y acentos.
// Un needle vacío coincide siempre.
func Contains(needle string, fields ...string) bool {
	n := Normalize(strings.TrimSpace(needle))
	if n == "" {
		return true
	}
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(Normalize(f), n) {
			return true
		}
	}
	return false
}

// Equal compara dos cadenas sin distinguir mayúsculas ni acentos.
func Equal(a, b string) bool {
	return Normalize(strings.TrimSpace(a)) == Normalize(strings.TrimSpace(b))
}
