package tutorial

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTutorial marks a reply that decoded but cannot be shown.
var ErrInvalidTutorial = errors.New("invalid tutorial")

// Difficulty is the tier a tutorial is pitched at.
type Difficulty string

const (
	Novice Difficulty = "Novice"
	Adept  Difficulty = "Adept"
	Master Difficulty = "Master"
)

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case Novice, Adept, Master:
		return true
	}
	return false
}

// Tutorial is a generated lesson with its quest tasks.
type Tutorial struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Difficulty Difficulty `json:"difficulty"`
	Tasks      []string   `json:"tasks"`
}

// Validate checks the fields the skill screen relies on.
func (t *Tutorial) Validate() error {
	switch {
	case t == nil:
		return fmt.Errorf("%w: nil", ErrInvalidTutorial)
	case strings.TrimSpace(t.Title) == "":
		return fmt.Errorf("%w: empty title", ErrInvalidTutorial)
	case strings.TrimSpace(t.Content) == "":
		return fmt.Errorf("%w: empty content", ErrInvalidTutorial)
	case !t.Difficulty.Valid():
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidTutorial, t.Difficulty)
	}

	for _, task := range t.Tasks {
		if strings.TrimSpace(task) != "" {
			return nil
		}
	}
	return fmt.Errorf("%w: no tasks", ErrInvalidTutorial)
}
