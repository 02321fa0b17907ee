package pages

import (
	"github.com/lox/agrimind/internal/icons"
	"github.com/lox/agrimind/internal/shell"
)

// Placeholder is the locked card shown for modules not yet built.
type Placeholder struct {
	Title   string
	Icon    icons.Icon
	Message string
}

// BuildPlaceholder resolves a placeholder for a nav entry or the settings
// page.
func BuildPlaceholder(path string) (Placeholder, bool) {
	if path == "/dashboard/settings" {
		return Placeholder{Title: "Settings", Icon: icons.Settings, Message: "Account settings are coming soon."}, true
	}
	e, ok := shell.Lookup(path)
	if !ok {
		return Placeholder{}, false
	}
	return Placeholder{
		Title:   e.Label,
		Icon:    e.Icon,
		Message: "Upgrade to Pro to unlock " + e.Label + ".",
	}, true
}
