package ui

// Layout constants for consistent sizing across the application.
const (
	// CardWidth is the full width of a card in columns, borders included.
	CardWidth = 14

	// CardHeight is the full height of a card in rows, borders included.
	CardHeight = 6

	// BorderWidth is the horizontal space consumed by a card border.
	BorderWidth = 2

	// RowMargin is the horizontal padding kept on each side of the card row.
	RowMargin = 2

	// FooterHeight is the space for the announcement line + instructions line.
	FooterHeight = 2

	// HeaderHeight is the space for the demo title bar.
	HeaderHeight = 1
)
