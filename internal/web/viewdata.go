package web

// Link is the hyperlink primitive shared by every partial.
type Link struct {
	Href  string
	Class string
	Label string
}

// Button is a call-to-action rendered by the "button" partial.
type Button struct {
	Text string
	Link string
}

// NavData is rendered by the "nav" partial on every page.
type NavData struct {
	Items []Link
	Login Link
	CTA   Button
}

// Page wraps shared Nav + page-specific Content.
type Page[T any] struct {
	Title   string
	Nav     NavData
	Content T
}
