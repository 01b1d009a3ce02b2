package mock

import "github.com/fwojciec/coursechef"

var _ coursechef.ResourceExtractor = (*ResourceExtractor)(nil)

// ResourceExtractor is a mock implementation of coursechef.ResourceExtractor.
type ResourceExtractor struct {
	ExtractResourcesFn func(html, dir string) ([]coursechef.Resource, error)
}

func (e *ResourceExtractor) ExtractResources(html, dir string) ([]coursechef.Resource, error) {
	return e.ExtractResourcesFn(html, dir)
}

var _ coursechef.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of coursechef.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}

var _ coursechef.PageBuilder = (*PageBuilder)(nil)

// PageBuilder is a mock implementation of coursechef.PageBuilder.
type PageBuilder struct {
	StandalonePageFn func(html string) (string, error)
}

func (b *PageBuilder) StandalonePage(html string) (string, error) {
	return b.StandalonePageFn(html)
}

var _ coursechef.VideoParser = (*VideoParser)(nil)

// VideoParser is a mock implementation of coursechef.VideoParser.
type VideoParser struct {
	ParseVideoFn func(xml string) (coursechef.VideoRef, error)
}

func (p *VideoParser) ParseVideo(xml string) (coursechef.VideoRef, error) {
	return p.ParseVideoFn(xml)
}

var _ coursechef.QuestionParser = (*QuestionParser)(nil)

// QuestionParser is a mock implementation of coursechef.QuestionParser.
type QuestionParser struct {
	ParseQuestionsFn func(problemID, xml string) ([]coursechef.Question, error)
}

func (p *QuestionParser) ParseQuestions(problemID, xml string) ([]coursechef.Question, error) {
	return p.ParseQuestionsFn(problemID, xml)
}
