package coursechef

// ResourceExtractor finds downloadable files referenced by an HTML fragment.
type ResourceExtractor interface {
	// ExtractResources returns the resources referenced from html, resolving
	// static references against the course directory dir. Returns an empty
	// slice when the fragment links to nothing.
	ExtractResources(html, dir string) ([]Resource, error)
}

// TextExtractor extracts a flat paragraph of plain text from an HTML fragment.
type TextExtractor interface {
	ExtractText(html string) (string, error)
}

// PageBuilder turns an HTML fragment into a standalone UTF-8 page.
type PageBuilder interface {
	StandalonePage(html string) (string, error)
}

// VideoRef is the playable reference of a video fragment. Exactly one
// field is set.
type VideoRef struct {
	YoutubeID string
	Path      string
}

// VideoParser extracts the playable reference from a video fragment.
type VideoParser interface {
	// ParseVideo returns EVIDEOFORMAT if no known reference form is present.
	ParseVideo(xml string) (VideoRef, error)
}

// QuestionParser extracts assessment questions from a problem fragment.
type QuestionParser interface {
	// ParseQuestions returns ENOQUESTIONS if the fragment yields no question.
	ParseQuestions(problemID, xml string) ([]Question, error)
}
