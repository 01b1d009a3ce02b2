package etree

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/coursechef"
)

// Ensure QuestionParser implements coursechef.QuestionParser at compile time.
var _ coursechef.QuestionParser = (*QuestionParser)(nil)

// responseFamily describes one response element family of a problem.
type responseFamily struct {
	tag   string
	group string
	qtype coursechef.QuestionType
}

var responseFamilies = []responseFamily{
	{tag: "multiplechoiceresponse", group: "choicegroup", qtype: coursechef.SingleSelection},
	{tag: "choiceresponse", group: "checkboxgroup", qtype: coursechef.MultipleSelection},
}

// QuestionParser extracts single and multiple selection questions from
// problem fragments.
type QuestionParser struct {
	// DropExplanation reports whether a solution text is boilerplate that
	// must not become a hint. Nil keeps every solution.
	DropExplanation func(text string) bool
}

// NewQuestionParser creates a new QuestionParser that filters hints
// through the vocabulary's drop explanations.
func NewQuestionParser(vocab *coursechef.Vocabulary) *QuestionParser {
	return &QuestionParser{DropExplanation: vocab.IsDropExplanation}
}

// ParseQuestions returns the questions of a problem in document order,
// single selection first. IDs are numbered per family: {problemID}-{n}.
func (p *QuestionParser) ParseQuestions(problemID, xml string) ([]coursechef.Question, error) {
	doc, err := parseString(xml)
	if err != nil {
		return nil, err
	}

	problems := doc.FindElements("//problem")
	if len(problems) != 1 {
		return nil, coursechef.Errorf(coursechef.EMALFORMED, "problem %s: expected one problem element, found %d", problemID, len(problems))
	}
	problem := problems[0]

	var questions []coursechef.Question
	for _, family := range responseFamilies {
		for i, resp := range problem.FindElements(".//" + family.tag) {
			q := p.parseResponse(resp, family)
			q.ID = fmt.Sprintf("%s-%d", problemID, i+1)
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		return nil, coursechef.Errorf(coursechef.ENOQUESTIONS, "no questions found in problem %s", problemID)
	}
	return questions, nil
}

func (p *QuestionParser) parseResponse(resp *etree.Element, family responseFamily) coursechef.Question {
	q := coursechef.Question{
		Type:    family.qtype,
		Answers: []string{},
		Hints:   []string{},
	}
	if family.qtype == coursechef.MultipleSelection {
		q.CorrectAnswers = []string{}
	}

	if prompt := previousSibling(resp, "p"); prompt != nil {
		q.Text = collapseSpace(innerText(prompt))
	}

	for _, choice := range resp.FindElements(".//" + family.group + "/choice") {
		answer := strings.TrimSpace(innerText(choice))
		q.Answers = append(q.Answers, answer)
		if choice.SelectAttrValue("correct", "") != "true" {
			continue
		}
		if family.qtype == coursechef.MultipleSelection {
			q.CorrectAnswers = append(q.CorrectAnswers, answer)
		} else {
			q.CorrectAnswer = answer
		}
	}

	if solution := findSolution(resp); solution != nil {
		text := strings.TrimSpace(innerText(solution))
		if text != "" && (p.DropExplanation == nil || !p.DropExplanation(text)) {
			q.Hints = append(q.Hints, text)
		}
	}

	return q
}

// findSolution returns the solution nested in the response, or the
// solution element immediately following it.
func findSolution(resp *etree.Element) *etree.Element {
	if el := resp.FindElement(".//solution"); el != nil {
		return el
	}
	if next := nextSibling(resp); next != nil && next.Tag == "solution" {
		return next
	}
	return nil
}

// previousSibling returns the nearest preceding sibling element with tag.
func previousSibling(el *etree.Element, tag string) *etree.Element {
	parent := el.Parent()
	if parent == nil {
		return nil
	}
	siblings := parent.ChildElements()
	for i := range siblings {
		if siblings[i] != el {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if siblings[j].Tag == tag {
				return siblings[j]
			}
		}
		return nil
	}
	return nil
}

// nextSibling returns the element immediately following el.
func nextSibling(el *etree.Element) *etree.Element {
	parent := el.Parent()
	if parent == nil {
		return nil
	}
	siblings := parent.ChildElements()
	for i := range siblings {
		if siblings[i] == el && i+1 < len(siblings) {
			return siblings[i+1]
		}
	}
	return nil
}

// innerText concatenates all character data below el.
func innerText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			b.WriteString(innerText(t))
		}
	}
	return b.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
