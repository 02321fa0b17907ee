// Package shell is the dashboard's navigation frame: sidebar, mobile panel
// and top bar. Its state is independent of whatever page fills the content
// slot.
package shell

import (
	"github.com/lox/agrimind/internal/icons"
	"github.com/lox/agrimind/internal/models"
)

const (
	CollapsedWidth = 70
	ExpandedWidth  = 256
)

var entries = []models.NavEntry{
	{Label: "Overview", Icon: icons.Dashboard, Path: "/dashboard", Tier: models.TierFree},
	{Label: "Precision Farming", Icon: icons.Droplets, Path: "/dashboard/precision", Tier: models.TierPremium},
	{Label: "Crop Monitoring", Icon: icons.Sprout, Path: "/dashboard/crops", Tier: models.TierPremium},
	{Label: "Machinery", Icon: icons.Tractor, Path: "/dashboard/machinery", Tier: models.TierPremium},
	{Label: "Yield Forecast", Icon: icons.TrendingUp, Path: "/dashboard/forecast", Tier: models.TierPremium},
	{Label: "AI Agents", Icon: icons.Bot, Path: "/dashboard/ai", Tier: models.TierPremium},
}

// Entries returns the navigation entries in display order.
func Entries() []models.NavEntry {
	return append([]models.NavEntry(nil), entries...)
}

// Lookup finds the entry for a path.
func Lookup(path string) (models.NavEntry, bool) {
	for _, e := range entries {
		if e.Path == path {
			return e, true
		}
	}
	return models.NavEntry{}, false
}

// State is the shell's own state. The zero value is expanded with the mobile
// panel closed.
type State struct {
	Collapsed  bool `json:"collapsed"`
	MobileOpen bool `json:"mobileOpen"`
}

func (s *State) ToggleCollapse() { s.Collapsed = !s.Collapsed }

func (s *State) OpenMobilePanel() { s.MobileOpen = true }

func (s *State) CloseMobilePanel() { s.MobileOpen = false }

// NavigationIntent asks the routing collaborator to move to Path.
type NavigationIntent struct {
	Path string
}

// SelectEntry closes the mobile panel and returns where to navigate. Paths
// that are not nav entries are rejected and leave the state unchanged.
func (s *State) SelectEntry(path string) (NavigationIntent, bool) {
	if _, ok := Lookup(path); !ok {
		return NavigationIntent{}, false
	}
	s.MobileOpen = false
	return NavigationIntent{Path: path}, true
}
