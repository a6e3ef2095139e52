package renderer

import (
	"github.com/cofreapp/cofre"
)

// Progression is the view model behind the level report template.
type Progression struct {
	XP    int
	Level LevelView
	Next  string // next level name, empty at the terminal level
}

// NewProgression builds the view model from a point total.
func NewProgression(xp int) *Progression {
	level := cofre.LevelFor(xp)
	next := cofre.LevelFor(xp + cofre.LevelThreshold)
	view := &Progression{XP: xp, Level: newLevelView(level)}
	if next.Name != level.Name {
		view.Next = next.Name
	}
	return view
}

// RenderLevel renders the level report to a markdown string.
func RenderLevel(xp int) string {
	return renderTemplate("level", "level.md", nil, NewProgression(xp))
}
