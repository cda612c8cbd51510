package web

const (
	navItemClass = "text-slate-700 font-[600] text-[1.125rem] leading-normal hover:text-slate-800"
	loginClass   = "text-slate-800 hover:text-slate-600 text-[1.125rem] leading-normal font-[600]"

	placeholderHref = "#"
	SigninPath      = "/signin"
	SignupPath      = "/signup"
)

var navLabels = [...]string{
	"Solution",
	"Market Place",
	"Learn",
	"About",
	"Customer Stories",
}

// Nav returns the navigation bar content. Every call allocates a new value.
func Nav() NavData {
	items := make([]Link, 0, len(navLabels))
	for _, label := range navLabels {
		items = append(items, Link{Href: placeholderHref, Class: navItemClass, Label: label})
	}
	return NavData{
		Items: items,
		Login: Link{Href: SigninPath, Class: loginClass, Label: "Login"},
		CTA:   Button{Text: "Start Free Trial", Link: SignupPath},
	}
}

// NewPage builds a Page with the navigation bar already mounted.
func NewPage[T any](title string, content T) Page[T] {
	return Page[T]{Title: title, Nav: Nav(), Content: content}
}
