package templates

import "github.com/a-h/templ"

// PromocodeRow represents a row in the promocodes table.
type PromocodeRow struct {
	ID       string
	Code     string
	Discount string
	Limit    string
	Used     string
	StartsAt string
	EndsAt   string
}

// PromocodesView provides data for the promocodes page.
type PromocodesView struct {
	Rows []PromocodeRow
}

// PromocodesPage renders the promocode table and its add dialog.
func PromocodesPage(view PromocodesView) templ.Component {
	return templ.FromGoHTML(lookup("promocodes"), view)
}
