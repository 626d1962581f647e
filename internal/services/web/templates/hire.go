package templates

var hireBringKeys = []string{
	"hire.bring.uncertainty",
	"hire.bring.intuition",
	"hire.bring.why",
	"hire.bring.ownership",
}

// HireView is the "Why hire me" page.
type HireView struct {
	ContactEmail string
}
