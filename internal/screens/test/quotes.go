package test

// quotesPerBlock is how many questions share one quote.
const quotesPerBlock = 5

var quotes = []string{
	"Knowing yourself is the beginning of all wisdom. - Aristotle",
	"The only journey is the one within. - Rainer Maria Rilke",
	"To find yourself, think for yourself. - Socrates",
	"Understanding your personality can unlock new paths to growth.",
	"Every answer brings you closer to a deeper self-understanding.",
}

// QuoteFor returns the quote shown at a question position. It changes every
// five questions and wraps around.
func QuoteFor(position int) string {
	if position < 0 {
		position = 0
	}
	return quotes[(position/quotesPerBlock)%len(quotes)]
}
