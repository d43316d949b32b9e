// Package views embeds the page templates and static assets.
package views

import (
	"embed"         // Embedded templates and assets
	"html/template" // Page templates
	"io/fs"         // Sub filesystem for static assets
	"math"          // Rounding for meta refresh
	"net/http"      // http.FileSystem for gin's StaticFS
	"time"          // Durations in page data

	"storefront/internal/cart"    // Cart view model
	"storefront/internal/catalog" // Products on the home view
)

//go:embed templates/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Template names rendered by the handlers
const (
	EntryPage  = "index.html"
	SignupPage = "signup.html"
	HomePage   = "homepage.html"
	CartPage   = "cart.html"
)

// Page is the data every template receives
type Page struct {
	Title        string
	LoggedIn     bool
	Email        string            // Prefills the email field after a failed login
	Message      string            // Inline message above the form
	MessageError bool              // Render Message as an error
	RefreshURL   string            // Deferred navigation target, empty for none
	RefreshAfter time.Duration     // Delay before RefreshURL
	Notice       string            // Transient notification
	NoticeFor    time.Duration     // How long Notice stays visible
	Products     []catalog.Product // Home view catalog
	Cart         cart.View         // Cart view model
}

// RefreshSeconds is the meta refresh delay, rounded up to whole seconds
func (p Page) RefreshSeconds() int {
	return int(math.Ceil(p.RefreshAfter.Seconds()))
}

// NoticeMillis is the notification lifetime used by the fade-out animation
func (p Page) NoticeMillis() int64 {
	return p.NoticeFor.Milliseconds()
}

// Load parses every template once. A missing or malformed template fails start-up.
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"price": cart.FormatPrice,
	}).ParseFS(templates, "templates/*.html")
}

// Static serves the embedded assets
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err) // The embed pattern guarantees the directory exists
	}
	return http.FS(sub)
}
