package templates

import "github.com/a-h/templ"

// UserRow represents a row in the users table.
type UserRow struct {
	ID           string
	Name         string
	Email        string
	RegisteredAt string
	Plan         string
	Status       string
	LastLogin    string
}

// UserPayment is one line of a user's payment history.
type UserPayment struct {
	Date   string
	Amount string
	Status string
}

// UserDetail is shown in the user dialog.
type UserDetail struct {
	Name      string
	Email     string
	Payments  []UserPayment
	Plan      string
	ExpiresAt string
}

// UsersView provides data for the users page.
type UsersView struct {
	Rows   []UserRow
	Detail UserDetail
}

// UsersPage renders the users table and the user detail dialog.
func UsersPage(view UsersView) templ.Component {
	return templ.FromGoHTML(lookup("users"), view)
}
