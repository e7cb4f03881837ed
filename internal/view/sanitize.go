package view

import "strings"

// Orden fijo: el ampersand primero para no re-escapar entidades.
var (
	escaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
	unescaper = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#039;", "'",
		"&amp;", "&",
	)
)

// Escape reemplaza los cinco caracteres especiales de HTML por sus entidades.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape revierte Escape.
func Unescape(s string) string {
	return unescaper.Replace(s)
}
