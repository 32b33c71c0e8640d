package templates

import (
	"fmt"
	"html/template"

	"github.com/buryatvpn/adminpanel/internal/platform/icons"
)

// iconSVG references the sprite symbol for a Lucide icon name.
func iconSVG(name string, class string) (template.HTML, error) {
	id, ok := icons.LookupLucide(name)
	if !ok {
		return "", fmt.Errorf("unknown icon %q", name)
	}
	symbol, ok := icons.SymbolID(id)
	if !ok {
		return "", fmt.Errorf("icon %q has no sprite symbol", name)
	}
	return template.HTML(`<svg class="` + template.HTMLEscapeString(class) + `" aria-hidden="true"><use href="#` +
		template.HTMLEscapeString(symbol) + `"></use></svg>`), nil
}
