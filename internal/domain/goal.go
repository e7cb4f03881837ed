package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultGoalText es la meta vigente antes de cualquier actualizacion.
	DefaultGoalText = "Learn Docker!"
	// MaxGoalLength es el largo maximo (en caracteres) de una meta ya recortada.
	MaxGoalLength = 100
	// InvalidGoalMessage es el mensaje expuesto al cliente ante una meta invalida.
	InvalidGoalMessage = "Invalid goal. Must be 1-100 characters."
)

// ErrInvalidGoal se devuelve cuando el texto queda vacio o supera MaxGoalLength.
var ErrInvalidGoal = errors.New("invalid goal: must be 1-100 characters")

type Goal struct {
	Text      string    `json:"goal"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultGoal devuelve la meta inicial del proceso.
func DefaultGoal() Goal {
	return Goal{Text: DefaultGoalText}
}

// NormalizeGoal recorta espacios y valida el largo del candidato.
func NormalizeGoal(candidate string) (string, error) {
	text := strings.TrimSpace(candidate)
	if text == "" || utf8.RuneCountInString(text) > MaxGoalLength {
		return "", ErrInvalidGoal
	}
	return text, nil
}
