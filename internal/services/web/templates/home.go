package templates

var homeDifferenceKeys = []string{
	"home.different.decisions",
	"home.different.tradeoffs",
	"home.different.questions",
	"home.different.simulate",
}
