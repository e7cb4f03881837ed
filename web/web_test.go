package web

import (
	"io"
	"strings"
	"testing"
)

func TestPublicFSServesStylesheet(t *testing.T) {
	fsys, err := PublicFS()
	if err != nil {
		t.Fatalf("public fs: %v", err)
	}
	f, err := fsys.Open("/styles.css")
	if err != nil {
		t.Fatalf("open styles.css: %v", err)
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read styles.css: %v", err)
	}
	if !strings.Contains(string(body), ".banner") {
		t.Fatalf("stylesheet missing banner rules")
	}
}
