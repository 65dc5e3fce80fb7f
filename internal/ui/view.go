package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/mazewalk/internal/entity"
	"github.com/samdwyer/mazewalk/internal/world"
)

// ViewMode selects how the maze is drawn.
type ViewMode int

const (
	// ViewFirstPerson looks out of the avatar's eyes.
	ViewFirstPerson ViewMode = iota
	// ViewTopDown looks down on the maze from above the avatar.
	ViewTopDown
)

// String returns the mode name as used in configuration.
func (m ViewMode) String() string {
	switch m {
	case ViewFirstPerson:
		return "first-person"
	case ViewTopDown:
		return "top-down"
	default:
		return "unknown"
	}
}

// ParseViewMode parses a mode name. It accepts the String forms plus a few
// shorthands.
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first-person", "firstperson", "fp", "3d":
		return ViewFirstPerson, nil
	case "top-down", "topdown", "top", "map":
		return ViewTopDown, nil
	default:
		return 0, fmt.Errorf("unknown view mode %q", s)
	}
}

// Frame is everything the renderer draws for one frame.
type Frame struct {
	Maze            *world.Maze
	Avatar          *entity.Avatar
	Mode            ViewMode
	VisibleDistance int
	Tick            int
	Defeated        int
	Total           int
}
