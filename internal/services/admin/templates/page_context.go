package templates

// PageContext provides shared layout context for console pages.
type PageContext struct {
	Lang        string
	AppName     string
	Heading     string
	CurrentView string
	ViewsPath   string
	AvatarURL   string
	Nav         []NavItem
}

// NavItem is a sidebar entry. Name is the view's fragment name.
type NavItem struct {
	Name   string
	Label  string
	Active bool
}
