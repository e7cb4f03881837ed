// Package web contiene los assets estaticos embebidos que se sirven cuando
// no se configura STATIC_DIR.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
)

//go:embed all:public
var embedFS embed.FS

// PublicFS devuelve el filesystem de public/ listo para servir por HTTP.
func PublicFS() (http.FileSystem, error) {
	publicFS, err := fs.Sub(embedFS, "public")
	if err != nil {
		return nil, fmt.Errorf("embedded public dir: %w", err)
	}
	return http.FS(publicFS), nil
}
