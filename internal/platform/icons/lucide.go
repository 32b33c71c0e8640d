package icons

import "strings"

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[ID]string{
	Menu:         "menu",
	Bell:         "bell",
	ChevronDown:  "chevron-down",
	Users:        "users",
	Crown:        "crown",
	DollarSign:   "dollar-sign",
	Plus:         "plus",
	Pencil:       "pencil",
	Trash:        "trash-2",
	MoreVertical: "ellipsis-vertical",
	Close:        "x",
}

// lucidePaths holds the SVG body of each Lucide icon on a 24x24 grid.
var lucidePaths = map[string]string{
	"menu":              `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
	"bell":              `<path d="M6 8a6 6 0 0 1 12 0c0 7 3 9 3 9H3s3-2 3-9"/><path d="M10.3 21a1.94 1.94 0 0 0 3.4 0"/>`,
	"chevron-down":      `<path d="m6 9 6 6 6-6"/>`,
	"users":             `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	"crown":             `<path d="m2 4 3 12h14l3-12-6 7-4-7-4 7-6-7zm3 16h14"/>`,
	"dollar-sign":       `<line x1="12" x2="12" y1="2" y2="22"/><path d="M17 5H9.5a3.5 3.5 0 0 0 0 7h5a3.5 3.5 0 0 1 0 7H6"/>`,
	"plus":              `<path d="M5 12h14"/><path d="M12 5v14"/>`,
	"pencil":            `<path d="M17 3a2.85 2.83 0 1 1 4 4L7.5 20.5 2 22l1.5-5.5Z"/>`,
	"trash-2":           `<path d="M3 6h18"/><path d="M19 6v14c0 1-1 2-2 2H7c-1 0-2-1-2-2V6"/><path d="M8 6V4c0-1 1-2 2-2h4c1 0 2 1 2 2v2"/><line x1="10" x2="10" y1="11" y2="17"/><line x1="14" x2="14" y1="11" y2="17"/>`,
	"ellipsis-vertical": `<circle cx="12" cy="12" r="1"/><circle cx="12" cy="5" r="1"/><circle cx="12" cy="19" r="1"/>`,
	"x":                 `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
}

var lucideSprite = buildLucideSprite()

// LucideName returns the Lucide icon name for an icon identifier.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LookupLucide returns the icon identifier for a Lucide icon name.
func LookupLucide(name string) (ID, bool) {
	for id, lucide := range lucideIconNames {
		if lucide == name {
			return id, true
		}
	}
	return Unspecified, false
}

// SymbolID returns the sprite symbol that draws id.
func SymbolID(id ID) (string, bool) {
	name, ok := LucideName(id)
	if !ok {
		return "", false
	}
	return lucideSymbolPrefix + name, true
}

// LucideSprite returns the SVG sprite markup for console icons.
func LucideSprite() string {
	return lucideSprite
}

func buildLucideSprite() string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" style="display:none">`)
	for id := Unspecified + 1; id < idCount; id++ {
		name := lucideIconNames[id]
		b.WriteString(`<symbol id="`)
		b.WriteString(lucideSymbolPrefix + name)
		b.WriteString(`" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
		b.WriteString(lucidePaths[name])
		b.WriteString(`</symbol>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
