package templates

import "github.com/a-h/templ"

// SettingsField is a single labelled input.
type SettingsField struct {
	Name  string
	Label string
	// Type is an HTML input type: text, password or checkbox.
	Type string
}

// SettingsSection groups fields under a heading.
type SettingsSection struct {
	Title  string
	Fields []SettingsField
}

// SettingsView provides data for the settings page.
type SettingsView struct {
	Sections []SettingsSection
}

// SettingsPage renders the settings forms.
func SettingsPage(view SettingsView) templ.Component {
	return templ.FromGoHTML(lookup("settings"), view)
}
