package session

// Page is a navigable feature of the app. The set is closed; anything else
// dispatches to Home.
type Page string

const (
	PageHome    Page = "Home"
	PageTest    Page = "Test"
	PageChecker Page = "Checker"
	PageChat    Page = "Kuchu"
	PageLibrary Page = "Library"
	PageAdmin   Page = "Admin"
)

// ParsePage maps a requested page name to a Page. Unknown or missing names
// default to Home, never an error. "Chat" is accepted as an alias for the
// Kuchu page.
func ParsePage(name string) Page {
	switch name {
	case "Test":
		return PageTest
	case "Checker":
		return PageChecker
	case "Kuchu", "Chat":
		return PageChat
	case "Library":
		return PageLibrary
	case "Admin":
		return PageAdmin
	default:
		return PageHome
	}
}
