package session

// View identifies one page of the storefront
type View string

// Storefront views
const (
	ViewEntry  View = "/index.html"    // Login page, entry point
	ViewSignup View = "/signup.html"   // Signup page
	ViewHome   View = "/homepage.html" // Catalog, requires the session flag
	ViewCart   View = "/cart.html"     // Cart, requires the session flag
)

// Path returns the URL path the view is served on
func (v View) Path() string {
	return string(v)
}

// Redirect applies the page-load policy. A logged-in visitor on the entry or
// signup view goes home; a logged-out visitor on home or cart goes to the entry view.
func Redirect(loggedIn bool, v View) (View, bool) {
	switch {
	case loggedIn && (v == ViewEntry || v == ViewSignup):
		return ViewHome, true
	case !loggedIn && (v == ViewHome || v == ViewCart):
		return ViewEntry, true
	}
	return v, false
}
