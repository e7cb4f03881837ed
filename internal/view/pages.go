package view

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"goal-board/internal/domain"
)

// InvalidGoalFlag es el unico valor de ?error= que muestra el banner de error.
const InvalidGoalFlag = "invalid_goal"

// DismissAfterMs es el tiempo tras el cual los banners se ocultan en el cliente.
const DismissAfterMs = 5000

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// HomeData es el registro validado que alimenta la pagina principal.
type HomeData struct {
	Goal    string
	Success string
	Error   string
}

// Los modelos de vista solo se construyen con valores ya escapados.
type homeView struct {
	Title          string
	Goal           string
	Success        bool
	InvalidGoal    bool
	MaxLength      int
	DismissAfterMs int
}

type errorView struct {
	Title  string
	Detail string
}

// Home renderiza la pagina principal con la meta actual y los banners opcionales.
func Home(data HomeData) (string, error) {
	return render("home", homeView{
		Title:          "Course Goals",
		Goal:           Escape(data.Goal),
		Success:        data.Success != "",
		InvalidGoal:    data.Error == InvalidGoalFlag,
		MaxLength:      domain.MaxGoalLength,
		DismissAfterMs: DismissAfterMs,
	})
}

// NotFound renderiza la pagina 404.
func NotFound() (string, error) {
	return render("not_found", errorView{Title: "404 - Page Not Found"})
}

// ServerError renderiza la pagina 500. El detalle solo se incluye si includeStack es true.
func ServerError(detail string, includeStack bool) (string, error) {
	v := errorView{Title: "500 - Internal Server Error"}
	if includeStack {
		v.Detail = Escape(detail)
	}
	return render("server_error", v)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
