package templates

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/buryatvpn/adminpanel/internal/platform/icons"
)

//go:embed html/*.html
var files embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"icon": iconSVG,
}).ParseFS(files, "html/*.html"))

// lookup returns the named page template or panics at first use when a
// template file is missing from the embedded set.
func lookup(name string) *template.Template {
	tmpl := pages.Lookup(name)
	if tmpl == nil {
		panic(fmt.Sprintf("templates: %q is not defined", name))
	}
	return tmpl
}

// layoutData is the model for the shell template.
type layoutData struct {
	PageContext
	Title  string
	Sprite template.HTML
	Main   template.HTML
}

// Layout renders the console shell around the children in ctx.
func Layout(title string, page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		main, err := templ.ToGoHTML(ctx, templ.GetChildren(ctx))
		if err != nil {
			return fmt.Errorf("render main content: %w", err)
		}
		return lookup("layout").Execute(w, layoutData{
			PageContext: page,
			Title:       ComposePageTitle(title, page.AppName),
			Sprite:      template.HTML(icons.LucideSprite()),
			Main:        main,
		})
	})
}

// ComposePageTitle appends the app name to a page title.
func ComposePageTitle(title string, appName string) string {
	switch {
	case title == "":
		return appName
	case appName == "":
		return title
	default:
		return title + " | " + appName
	}
}
