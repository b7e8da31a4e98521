package models

// Portfolio is the latest portfolio document, kept loosely typed so display fields
// an editor adds in the database reach the page untouched.
type Portfolio map[string]any

// PortfolioDefaults fill display fields that are missing or empty.
var PortfolioDefaults = []struct {
	Key   string
	Value string
}{
	{"name", "Portfolio"},
	{"title", "Web Developer & Designer"},
	{"email", "contact@example.com"},
	{"phone", "+1 (555) 000-0000"},
	{"location", "Your Location"},
}
