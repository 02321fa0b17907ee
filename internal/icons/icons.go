// Package icons resolves opaque icon handles to inline SVG glyphs.
//
// Domain data and widgets only ever carry an Icon value; the glyph geometry
// lives here and nowhere else.
package icons

import (
	"fmt"
	"html/template"
)

// Icon is an opaque reference to a glyph.
type Icon int

const (
	None Icon = iota
	Dashboard
	Sprout
	Tractor
	TrendingUp
	Bot
	Droplets
	Bell
	Settings
	LogOut
	ChevronLeft
	ChevronRight
	Crown
	Menu
	Heart
	Leaf
	ThermometerSun
	Thermometer
	Sun
	Wind
	Cloud
	CloudRain
	CloudSun
	AlertTriangle
	Lock
	Wifi
	WifiOff
	BatteryFull
	BatteryMedium
	BatteryLow
	Clock
	FlaskConical
	Activity
	Bug
	Satellite
	Layers
	Camera
	Shield
	ArrowUpRight
	ArrowDownRight
	Check
	MessageCircle
	numIcons
)

// All returns every resolvable icon, excluding None.
func All() []Icon {
	out := make([]Icon, 0, numIcons-1)
	for i := None + 1; i < numIcons; i++ {
		out = append(out, i)
	}
	return out
}

var paths = [numIcons]string{
	None:           ``,
	Dashboard:      `<rect x="3" y="3" width="7" height="9" rx="1"/><rect x="14" y="3" width="7" height="5" rx="1"/><rect x="14" y="12" width="7" height="9" rx="1"/><rect x="3" y="16" width="7" height="5" rx="1"/>`,
	Sprout:         `<path d="M7 20h10"/><path d="M10 20c5.5-2.5.8-6.4 3-10"/><path d="M9.5 9.4c1.1.8 1.8 2.2 2.3 3.7-2 .4-3.5.4-4.8-.3-1.2-.6-2.3-1.9-3-4.2 2.8-.5 4.4 0 5.5.8z"/><path d="M14.1 6a7 7 0 0 0-1.1 4c1.9-.1 3.3-.6 4.3-1.4 1-1 1.6-2.3 1.7-4.6-2.7.1-4 1-4.9 2z"/>`,
	Tractor:        `<path d="m10 11 11 .9a1 1 0 0 1 .8 1.1l-.665 4.158a1 1 0 0 1-.988.842H20"/><path d="M16 18h-5"/><path d="M18 5a1 1 0 0 0-1 1v5.573"/><path d="M3 4h8.129a1 1 0 0 1 .99.863L13 11.246"/><path d="M4 11V4"/><path d="M7 15h.01"/><circle cx="18" cy="18" r="2"/><circle cx="7" cy="15" r="5"/>`,
	TrendingUp:     `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	Bot:            `<path d="M12 8V4H8"/><rect width="16" height="12" x="4" y="8" rx="2"/><path d="M2 14h2"/><path d="M20 14h2"/><path d="M15 13v2"/><path d="M9 13v2"/>`,
	Droplets:       `<path d="M7 16.3c2.2 0 4-1.83 4-4.05 0-1.16-.57-2.26-1.71-3.19S7.29 6.75 7 5.3c-.29 1.45-1.14 2.84-2.29 3.76S3 11.1 3 12.25c0 2.22 1.8 4.05 4 4.05z"/><path d="M12.56 6.6A10.97 10.97 0 0 0 14 3.02c.5 2.5 2 4.9 4 6.5s3 3.5 3 5.5a6.98 6.98 0 0 1-11.91 4.97"/>`,
	Bell:           `<path d="M6 8a6 6 0 0 1 12 0c0 7 3 9 3 9H3s3-2 3-9"/><path d="M10.3 21a1.94 1.94 0 0 0 3.4 0"/>`,
	Settings:       `<circle cx="12" cy="12" r="3"/><path d="M19.4 15a1.65 1.65 0 0 0 .33 1.82l.06.06a2 2 0 1 1-2.83 2.83l-.06-.06a1.65 1.65 0 0 0-2.82 1.17V21a2 2 0 1 1-4 0v-.09A1.65 1.65 0 0 0 7 19.4a1.65 1.65 0 0 0-1.82.33l-.06.06a2 2 0 1 1-2.83-2.83l.06-.06A1.65 1.65 0 0 0 1.17 14H1a2 2 0 1 1 0-4h.09A1.65 1.65 0 0 0 4.6 9a1.65 1.65 0 0 0-.33-1.82l-.06-.06a2 2 0 1 1 2.83-2.83l.06.06A1.65 1.65 0 0 0 10 1.17V1a2 2 0 1 1 4 0v.09a1.65 1.65 0 0 0 2.82 1.17l.06-.06a2 2 0 1 1 2.83 2.83l-.06.06A1.65 1.65 0 0 0 22.83 10H23a2 2 0 1 1 0 4h-.09A1.65 1.65 0 0 0 19.4 15z"/>`,
	LogOut:         `<path d="M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4"/><polyline points="16 17 21 12 16 7"/><line x1="21" x2="9" y1="12" y2="12"/>`,
	ChevronLeft:    `<path d="m15 18-6-6 6-6"/>`,
	ChevronRight:   `<path d="m9 18 6-6-6-6"/>`,
	Crown:          `<path d="m2 4 3 12h14l3-12-6 7-4-7-4 7-6-7zm3 16h14"/>`,
	Menu:           `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
	Heart:          `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.3 1.5 4.05 3 5.5l7 7Z"/>`,
	Leaf:           `<path d="M11 20A7 7 0 0 1 9.8 6.1C15.5 5 17 4.48 19 2c1 2 2 4.18 2 8 0 5.5-4.78 10-10 10Z"/><path d="M2 21c0-3 1.85-5.36 5.08-6C9.5 14.52 12 13 13 12"/>`,
	ThermometerSun: `<path d="M12 9a4 4 0 0 0-2 7.5"/><path d="M12 3v2"/><path d="m6.6 18.4-1.4 1.4"/><path d="M20 4v10.54a4 4 0 1 1-4 0V4a2 2 0 0 1 4 0Z"/><path d="M4 13H2"/><path d="M6.34 7.34 4.93 5.93"/>`,
	Thermometer:    `<path d="M14 4v10.54a4 4 0 1 1-4 0V4a2 2 0 0 1 4 0Z"/>`,
	Sun:            `<circle cx="12" cy="12" r="4"/><path d="M12 2v2"/><path d="M12 20v2"/><path d="m4.93 4.93 1.41 1.41"/><path d="m17.66 17.66 1.41 1.41"/><path d="M2 12h2"/><path d="M20 12h2"/><path d="m6.34 17.66-1.41 1.41"/><path d="m19.07 4.93-1.41 1.41"/>`,
	Wind:           `<path d="M17.7 7.7a2.5 2.5 0 1 1 1.8 4.3H2"/><path d="M9.6 4.6A2 2 0 1 1 11 8H2"/><path d="M12.6 19.4A2 2 0 1 0 14 16H2"/>`,
	Cloud:          `<path d="M17.5 19H9a7 7 0 1 1 6.71-9h1.79a4.5 4.5 0 1 1 0 9Z"/>`,
	CloudRain:      `<path d="M4 14.899A7 7 0 1 1 15.71 8h1.79a4.5 4.5 0 0 1 2.5 8.242"/><path d="M16 14v6"/><path d="M8 14v6"/><path d="M12 16v6"/>`,
	CloudSun:       `<path d="M12 2v2"/><path d="m4.93 4.93 1.41 1.41"/><path d="M20 12h2"/><path d="m19.07 4.93-1.41 1.41"/><path d="M15.947 12.65a4 4 0 0 0-5.925-4.128"/><path d="M13 22H7a5 5 0 1 1 4.9-6H13a3 3 0 0 1 0 6Z"/>`,
	AlertTriangle:  `<path d="m21.73 18-8-14a2 2 0 0 0-3.48 0l-8 14A2 2 0 0 0 4 21h16a2 2 0 0 0 1.73-3Z"/><path d="M12 9v4"/><path d="M12 17h.01"/>`,
	Lock:           `<rect width="18" height="11" x="3" y="11" rx="2" ry="2"/><path d="M7 11V7a5 5 0 0 1 10 0v4"/>`,
	Wifi:           `<path d="M12 20h.01"/><path d="M2 8.82a15 15 0 0 1 20 0"/><path d="M5 12.859a10 10 0 0 1 14 0"/><path d="M8.5 16.429a5 5 0 0 1 7 0"/>`,
	WifiOff:        `<path d="M12 20h.01"/><path d="M8.5 16.429a5 5 0 0 1 7 0"/><path d="M5 12.859a10 10 0 0 1 5.17-2.69"/><path d="M19 12.859a10 10 0 0 0-2.007-1.523"/><path d="M2 8.82a15 15 0 0 1 4.177-2.643"/><path d="M22 8.82a15 15 0 0 0-11.288-3.764"/><path d="m2 2 20 20"/>`,
	BatteryFull:    `<rect width="16" height="10" x="2" y="7" rx="2" ry="2"/><line x1="22" x2="22" y1="11" y2="13"/><line x1="6" x2="6" y1="11" y2="13"/><line x1="10" x2="10" y1="11" y2="13"/><line x1="14" x2="14" y1="11" y2="13"/>`,
	BatteryMedium:  `<rect width="16" height="10" x="2" y="7" rx="2" ry="2"/><line x1="22" x2="22" y1="11" y2="13"/><line x1="6" x2="6" y1="11" y2="13"/><line x1="10" x2="10" y1="11" y2="13"/>`,
	BatteryLow:     `<rect width="16" height="10" x="2" y="7" rx="2" ry="2"/><line x1="22" x2="22" y1="11" y2="13"/><line x1="6" x2="6" y1="11" y2="13"/>`,
	Clock:          `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`,
	FlaskConical:   `<path d="M10 2v7.527a2 2 0 0 1-.211.896L4.72 20.55a1 1 0 0 0 .9 1.45h12.76a1 1 0 0 0 .9-1.45l-5.069-10.127A2 2 0 0 1 14 9.527V2"/><path d="M8.5 2h7"/><path d="M7 16h10"/>`,
	Activity:       `<path d="M22 12h-4l-3 9L9 3l-3 9H2"/>`,
	Bug:            `<path d="m8 2 1.88 1.88"/><path d="M14.12 3.88 16 2"/><path d="M9 7.13v-1a3.003 3.003 0 1 1 6 0v1"/><path d="M12 20c-3.3 0-6-2.7-6-6v-3a4 4 0 0 1 4-4h4a4 4 0 0 1 4 4v3c0 3.3-2.7 6-6 6"/><path d="M12 20v-9"/><path d="M6 13H2"/><path d="M22 13h-4"/>`,
	Satellite:      `<path d="M13 7 9 3 5 7l4 4"/><path d="m17 11 4 4-4 4-4-4"/><path d="m8 12 4 4 6-6-4-4Z"/><path d="m16 8 3-3"/><path d="M9 21a6 6 0 0 0-6-6"/>`,
	Layers:         `<path d="m12.83 2.18a2 2 0 0 0-1.66 0L2.6 6.08a1 1 0 0 0 0 1.83l8.58 3.91a2 2 0 0 0 1.66 0l8.58-3.9a1 1 0 0 0 0-1.83Z"/><path d="m22 17.65-9.17 4.16a2 2 0 0 1-1.66 0L2 17.65"/><path d="m22 12.65-9.17 4.16a2 2 0 0 1-1.66 0L2 12.65"/>`,
	Camera:         `<path d="M14.5 4h-5L7 7H4a2 2 0 0 0-2 2v9a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V9a2 2 0 0 0-2-2h-3l-2.5-3z"/><circle cx="12" cy="13" r="3"/>`,
	Shield:         `<path d="M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z"/>`,
	ArrowUpRight:   `<path d="M7 7h10v10"/><path d="M7 17 17 7"/>`,
	ArrowDownRight: `<path d="m7 7 10 10"/><path d="M17 7v10H7"/>`,
	Check:          `<path d="M20 6 9 17l-5-5"/>`,
	MessageCircle:  `<path d="M7.9 20A9 9 0 1 0 4 16.1L2 22Z"/>`,
}

var names = [numIcons]string{
	None: "none", Dashboard: "dashboard", Sprout: "sprout", Tractor: "tractor",
	TrendingUp: "trending-up", Bot: "bot", Droplets: "droplets", Bell: "bell",
	Settings: "settings", LogOut: "log-out", ChevronLeft: "chevron-left",
	ChevronRight: "chevron-right", Crown: "crown", Menu: "menu", Heart: "heart",
	Leaf: "leaf", ThermometerSun: "thermometer-sun", Thermometer: "thermometer",
	Sun: "sun", Wind: "wind", Cloud: "cloud", CloudRain: "cloud-rain",
	CloudSun: "cloud-sun", AlertTriangle: "alert-triangle", Lock: "lock",
	Wifi: "wifi", WifiOff: "wifi-off", BatteryFull: "battery-full",
	BatteryMedium: "battery-medium", BatteryLow: "battery-low", Clock: "clock",
	FlaskConical: "flask-conical", Activity: "activity", Bug: "bug",
	Satellite: "satellite", Layers: "layers", Camera: "camera", Shield: "shield",
	ArrowUpRight: "arrow-up-right", ArrowDownRight: "arrow-down-right",
	Check: "check", MessageCircle: "message-circle",
}

// String returns the kebab-case glyph name, used as a CSS hook and in JSON.
func (i Icon) String() string {
	if i < 0 || i >= numIcons {
		return fmt.Sprintf("icon(%d)", int(i))
	}
	return names[i]
}

// MarshalText encodes the icon by name.
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Glyph renders the icon as an inline SVG with the given CSS class.
// None renders nothing.
func Glyph(i Icon, class string) template.HTML {
	if i <= None || i >= numIcons {
		return ""
	}
	return template.HTML(fmt.Sprintf(
		`<svg class="icon icon-%s %s" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">%s</svg>`,
		names[i], template.HTMLEscapeString(class), paths[i]))
}

// Named resolves a glyph name such as "cloud-rain".
func Named(name string) (Icon, bool) {
	for i, n := range names {
		if n == name && Icon(i) != None {
			return Icon(i), true
		}
	}
	return None, false
}

// UnmarshalText decodes a glyph name written by MarshalText.
func (i *Icon) UnmarshalText(b []byte) error {
	ic, ok := Named(string(b))
	if !ok && string(b) != names[None] {
		return fmt.Errorf("icons: unknown glyph %q", b)
	}
	*i = ic
	return nil
}
