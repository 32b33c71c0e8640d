package templates

import "github.com/a-h/templ"

// DashboardStats holds the summary cards for the dashboard.
type DashboardStats struct {
	TotalUsers   string
	PopularPlan  string
	TotalRevenue string
}

// PaymentRow represents a recent payment.
type PaymentRow struct {
	TransactionID string
	User          string
	Amount        string
	Date          string
	Status        string
}

// DashboardView provides data for the dashboard page.
type DashboardView struct {
	Stats    DashboardStats
	Payments []PaymentRow
}

// DashboardPage renders the dashboard body.
func DashboardPage(view DashboardView) templ.Component {
	return templ.FromGoHTML(lookup("dashboard"), view)
}
