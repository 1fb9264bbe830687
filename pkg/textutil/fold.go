// Package textutil normaliza términos de búsqueda: los nombres colombianos
// llevan tildes y la comparación ILIKE no las ignora por sí sola.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold recorta espacios, pasa a minúsculas y elimina marcas diacríticas
// ("José Pérez " → "jose perez"). Si la transformación falla devuelve el
// término en minúsculas sin plegar acentos.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		return s
	}
	return folded
}
