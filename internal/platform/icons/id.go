package icons

// ID identifies a console icon.
type ID uint8

const (
	Unspecified ID = iota
	Menu
	Bell
	ChevronDown
	Users
	Crown
	DollarSign
	Plus
	Pencil
	Trash
	MoreVertical
	Close
	idCount
)
