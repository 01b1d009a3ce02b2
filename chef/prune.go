package chef

import (
	"log/slog"

	"github.com/fwojciec/coursechef"
)

// Pruner annotates a resolved tree and drops nodes that have no place in
// the target tree.
type Pruner struct {
	Vocabulary *coursechef.Vocabulary
	Videos     coursechef.VideoParser
	Resources  coursechef.ResourceExtractor
	Texts      coursechef.TextExtractor
	Questions  coursechef.QuestionParser
	Logger     *slog.Logger
}

// Prune returns an annotated copy of root; root itself is not modified.
// Pruning an already pruned tree yields an equal tree.
//
// Each node is annotated before its children are filtered: videos get a
// playable reference, html fragments get resources or text, problems get
// questions. Children are then dropped by kind, by title and, for
// verticals, by classification, and pruning recurses into the survivors.
func (p *Pruner) Prune(root *coursechef.Node, dir string) (*coursechef.Node, error) {
	out := root.Clone()
	if err := p.prune(out, dir); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Pruner) prune(n *coursechef.Node, dir string) error {
	if err := p.enrich(n, dir); err != nil {
		return err
	}

	children := make([]*coursechef.Node, 0, len(n.Children))
	for _, child := range n.Children {
		keep, err := p.filter(n, child)
		if err != nil {
			return err
		}
		if !keep {
			continue
		}
		if err := p.prune(child, dir); err != nil {
			return err
		}
		children = append(children, child)
	}
	n.Children = children

	return nil
}

// enrich attaches derived data to leaf kinds.
func (p *Pruner) enrich(n *coursechef.Node, dir string) error {
	switch n.Kind {
	case coursechef.KindVideo:
		ref, err := p.Videos.ParseVideo(n.Content)
		if err != nil {
			return err
		}
		n.YoutubeID = ref.YoutubeID
		n.Path = ref.Path

	case coursechef.KindHTML:
		resources, err := p.Resources.ExtractResources(n.Content, dir)
		if err != nil {
			return err
		}
		p.warnResources(n, resources)
		n.Resources = resources
		n.Text = ""
		if len(resources) == 0 {
			text, err := p.Texts.ExtractText(n.Content)
			if err != nil {
				return err
			}
			n.Text = text
		}

	case coursechef.KindProblem:
		questions, err := p.Questions.ParseQuestions(n.ID, n.Content)
		if err != nil {
			return err
		}
		n.Questions = questions
	}
	return nil
}

// filter reports whether child survives under parent. Learning objectives
// verticals are folded into parent's description and never survive.
func (p *Pruner) filter(parent, child *coursechef.Node) (bool, error) {
	if p.vocabulary().ShouldSkipKind(child.Kind) {
		p.logger().Info("dropping node", "reason", "kind", "kind", child.Kind, "id", child.ID)
		return false, nil
	}

	if p.vocabulary().ShouldDropTitle(child.Title()) {
		p.logger().Info("dropping node", "reason", "title", "kind", child.Kind, "id", child.ID, "title", child.Title())
		return false, nil
	}

	if child.Kind != coursechef.KindVertical {
		return true, nil
	}

	switch vt := coursechef.ClassifyVertical(child, p.vocabulary()); vt {
	case coursechef.VerticalUnrecognized:
		return false, coursechef.Errorf(coursechef.EVERTICALTYPE, "unrecognized vertical type: %s %q", child.ID, child.Title())
	case coursechef.VerticalDiscussion:
		p.logger().Info("dropping node", "reason", vt.String(), "id", child.ID)
		return false, nil
	case coursechef.VerticalLearningObjectives:
		description, err := p.objectives(child)
		if err != nil {
			return false, err
		}
		parent.Description = description
		return false, nil
	}
	return true, nil
}

// objectives returns the text of a learning objectives vertical. Only the
// first child is used.
func (p *Pruner) objectives(v *coursechef.Node) (string, error) {
	if len(v.Children) == 0 {
		p.logger().Warn("empty learning objectives", "id", v.ID)
		return "", nil
	}
	if len(v.Children) > 1 {
		p.logger().Info("ignoring extra learning objectives children", "id", v.ID, "count", len(v.Children)-1)
	}

	first := v.Children[0]
	if first.Kind != coursechef.KindHTML {
		p.logger().Warn("learning objectives without html", "id", v.ID, "kind", first.Kind)
		return "", nil
	}
	return p.Texts.ExtractText(first.Content)
}

func (p *Pruner) warnResources(n *coursechef.Node, resources []coursechef.Resource) {
	for _, r := range resources {
		switch {
		case r.External:
			p.logger().Warn("unknown link host", "html", n.ID, "href", r.Href)
		case r.Missing:
			p.logger().Warn("resource not found", "html", n.ID, "href", r.Href, "path", r.RelPath)
		}
	}
}

func (p *Pruner) vocabulary() *coursechef.Vocabulary {
	if p.Vocabulary == nil {
		return coursechef.DefaultVocabulary()
	}
	return p.Vocabulary
}

func (p *Pruner) logger() *slog.Logger {
	return loggerOrDiscard(p.Logger)
}
