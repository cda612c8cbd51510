package web

type HomeContent struct {
	Headline    string
	Description string
}

// Placeholder is a page the nav links to that has no content of its own yet.
type Placeholder struct {
	Page    string
	Path    string
	Title   string
	Message string
}

var Placeholders = []Placeholder{
	{Page: "signin", Path: SigninPath, Title: "Sign in", Message: "Sign-in is coming soon."},
	{Page: "signup", Path: SignupPath, Title: "Start Free Trial", Message: "Trial sign-up is coming soon."},
}

func HomePage(title, headline, description string) Page[HomeContent] {
	return NewPage(title, HomeContent{Headline: headline, Description: description})
}

func PlaceholderPage(p Placeholder) Page[Placeholder] {
	return NewPage(p.Title, p)
}
