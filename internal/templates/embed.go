package templates

import (
	"embed"
	"errors"
	"io/fs"
)

//go:embed shell.html
var defaultShell string

//go:embed all:starter
var starterFS embed.FS

var validStarters = []string{"starter"}

var ErrInvalidStarter = errors.New("invalid starter name")

// DefaultShell is used when a site does not configure its own template.
func DefaultShell() string {
	return defaultShell
}

func GetStarter(name string) (fs.FS, error) {
	switch name {
	case "", "starter":
		return fs.Sub(starterFS, "starter")
	default:
		return nil, ErrInvalidStarter
	}
}

func ValidStarters() []string {
	out := make([]string, len(validStarters))
	copy(out, validStarters)
	return out
}
