package shell

import (
	"github.com/lox/agrimind/internal/icons"
	"github.com/lox/agrimind/internal/models"
)

type NavItem struct {
	Label             string
	Icon              icons.Icon
	Path              string
	Active            bool
	ShowLabel         bool
	ShowPremiumMarker bool
}

type FooterLink struct {
	Label string
	Icon  icons.Icon
	Path  string
}

// View is everything the shell template needs for one render.
type View struct {
	State        State
	Title        string
	Items        []NavItem
	Footer       []FooterLink
	Width        int
	CollapseIcon icons.Icon
	ShowLabels   bool
	ShowUpgrade  bool
	ShowBackdrop bool
	Initials     string
	HasUnread    bool
}

var footer = []FooterLink{
	{Label: "Settings", Icon: icons.Settings, Path: "/dashboard/settings"},
	{Label: "Logout", Icon: icons.LogOut, Path: "/"},
}

// Build derives the shell view from its state and the current route.
func Build(s State, currentPath string) View {
	v := View{
		State:        s,
		Title:        "Dashboard",
		Footer:       footer,
		Width:        ExpandedWidth,
		CollapseIcon: icons.ChevronLeft,
		ShowLabels:   !s.Collapsed,
		ShowUpgrade:  !s.Collapsed,
		ShowBackdrop: s.MobileOpen,
		Initials:     "JF",
		HasUnread:    true,
	}
	if s.Collapsed {
		v.Width = CollapsedWidth
		v.CollapseIcon = icons.ChevronRight
	}
	for _, e := range Entries() {
		v.Items = append(v.Items, NavItem{
			Label:             e.Label,
			Icon:              e.Icon,
			Path:              e.Path,
			Active:            e.Path == currentPath,
			ShowLabel:         !s.Collapsed,
			ShowPremiumMarker: !s.Collapsed && e.Tier == models.TierPremium,
		})
	}
	return v
}
