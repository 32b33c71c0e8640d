package hashroute

import "strings"

// View identifies one of the console pages.
type View uint8

const (
	Dashboard View = iota
	Promocodes
	Settings
	Users
	viewCount
)

// Default is the view shown for empty or unknown fragments.
const Default = Dashboard

var viewNames = [viewCount]string{
	Dashboard:  "dashboard",
	Promocodes: "promocodes",
	Settings:   "settings",
	Users:      "users",
}

// All returns every view in sidebar order.
func All() []View {
	return []View{Dashboard, Promocodes, Users, Settings}
}

// String returns the fragment name of the view.
func (v View) String() string {
	if !v.Valid() {
		return viewNames[Default]
	}
	return viewNames[v]
}

// Valid reports whether v is one of the known views.
func (v View) Valid() bool {
	return v < viewCount
}

// Lookup returns the view named by fragment. A leading "#" is ignored.
func Lookup(fragment string) (View, bool) {
	name := strings.TrimPrefix(fragment, "#")
	if name == "" {
		return Default, false
	}
	for i, candidate := range viewNames {
		if candidate == name {
			return View(i), true
		}
	}
	return Default, false
}

// Parse normalizes a fragment into a view. Empty and unknown fragments map to
// Default.
func Parse(fragment string) View {
	view, _ := Lookup(fragment)
	return view
}
