package chef

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"github.com/fwojciec/coursechef"
)

// Transformer projects a pruned course tree onto the target schema and
// writes the bundles the target tree refers to.
type Transformer struct {
	Vocabulary *coursechef.Vocabulary

	// Language, License and Author are attached to every emitted node.
	Language string
	License  *coursechef.License
	Author   string

	Locator  coursechef.AssetLocator
	Pages    coursechef.PageBuilder
	Renderer coursechef.MarkdownRenderer
	Bundler  coursechef.Bundler
	Logger   *slog.Logger
}

// courseTransform holds the state of one Transform call.
type courseTransform struct {
	*Transformer
	ctx      context.Context
	dir      string
	courseID string
}

// Transform converts a pruned course tree rooted at a course node.
// Bundles are written as {courseID}/{sourceID}.zip through the Bundler.
func (t *Transformer) Transform(ctx context.Context, root *coursechef.Node, dir string) (*coursechef.ContentNode, error) {
	if root == nil || root.Kind != coursechef.KindCourse {
		return nil, coursechef.Errorf(coursechef.EINVALID, "transform requires a course root")
	}

	courseID := root.Attrs[coursechef.AttrCourse]
	if courseID == "" {
		courseID = root.ID
	}
	ct := &courseTransform{Transformer: t, ctx: ctx, dir: dir, courseID: courseID}

	course := ct.newNode(coursechef.ContentTopic, root.Title(), courseID, root.Description)
	course.Thumbnail = ct.thumbnail(root)

	for _, child := range root.Children {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if child.Kind != coursechef.KindChapter {
			ct.logger().Info("skipping course child", "kind", child.Kind, "id", child.ID)
			continue
		}
		chapter, err := ct.chapter(child)
		if err != nil {
			return nil, err
		}
		course.Children = append(course.Children, chapter)
	}

	return course, nil
}

// chapter converts a chapter and appends one bundle holding the
// resources its descendants contributed.
func (t *courseTransform) chapter(n *coursechef.Node) (*coursechef.ContentNode, error) {
	topic := t.newNode(coursechef.ContentTopic, n.Title(), n.ID, n.Description)

	var pool []coursechef.Resource
	for _, child := range n.Children {
		if child.Kind != coursechef.KindSequential {
			t.logger().Info("skipping chapter child", "kind", child.Kind, "id", child.ID)
			continue
		}
		nodes, resources, err := t.sequential(child)
		if err != nil {
			return nil, err
		}
		topic.Children = append(topic.Children, nodes...)
		pool = append(pool, resources...)
	}

	if len(pool) > 0 {
		bundle, err := t.resourceBundle(t.vocabulary().ResourcesTitle, n.ID+"-resources", pool)
		if err != nil {
			return nil, err
		}
		topic.Children = append(topic.Children, bundle)
	}

	return topic, nil
}

// sequential converts a sequential into the nodes placed under its chapter
// and returns the resources it adds to the chapter pool.
func (t *courseTransform) sequential(n *coursechef.Node) ([]*coursechef.ContentNode, []coursechef.Resource, error) {
	if len(n.Children) == 0 {
		t.logger().Info("skipping empty sequential", "id", n.ID, "title", n.Title())
		return nil, nil, nil
	}

	// A sequential made only of tests is an exam; its single exercise
	// moves up to the chapter.
	if t.allTests(n.Children) {
		if len(n.Children) != 1 {
			return nil, nil, coursechef.Errorf(coursechef.EASSUMPTION, "too many verticals found in test sequential %s", n.ID)
		}
		exercise, err := t.exercise(n.Children[0], n.Title())
		if err != nil || exercise == nil {
			return nil, nil, err
		}
		return []*coursechef.ContentNode{exercise}, nil, nil
	}

	topic := t.newNode(coursechef.ContentTopic, n.Title(), n.ID, n.Description)
	var pool []coursechef.Resource
	for _, v := range n.Children {
		if v.Kind != coursechef.KindVertical {
			t.logger().Info("skipping sequential child", "kind", v.Kind, "id", v.ID)
			continue
		}

		switch vt := coursechef.ClassifyVertical(v, t.vocabulary()); vt {
		case coursechef.VerticalTest, coursechef.VerticalKnowledgeCheck:
			exercise, err := t.exercise(v, n.Title())
			if err != nil {
				return nil, nil, err
			}
			if exercise != nil {
				topic.Children = append(topic.Children, exercise)
			}

		case coursechef.VerticalVideo:
			video, resources, err := t.video(v, n.Title())
			if err != nil {
				return nil, nil, err
			}
			topic.Children = append(topic.Children, video)
			pool = append(pool, resources...)

		case coursechef.VerticalHTML:
			nodes, resources, err := t.html(v)
			if err != nil {
				return nil, nil, err
			}
			topic.Children = append(topic.Children, nodes...)
			pool = append(pool, resources...)

		default:
			t.logger().Info("skipping vertical", "type", vt.String(), "id", v.ID)
		}
	}

	return []*coursechef.ContentNode{topic}, pool, nil
}

func (t *courseTransform) allTests(children []*coursechef.Node) bool {
	for _, c := range children {
		if c.Kind != coursechef.KindVertical || coursechef.ClassifyVertical(c, t.vocabulary()) != coursechef.VerticalTest {
			return false
		}
	}
	return true
}

// exercise converts a test or knowledge check vertical. A vertical without
// questions yields no node.
func (t *courseTransform) exercise(v *coursechef.Node, parentTitle string) (*coursechef.ContentNode, error) {
	var description string
	if len(v.Children) > 0 && v.Children[0].Kind == coursechef.KindHTML {
		description = v.Children[0].Text
	}

	var questions []coursechef.Question
	for _, child := range v.Children {
		if child.Kind != coursechef.KindProblem {
			continue
		}
		for _, q := range child.Questions {
			questions = append(questions, q.Clone())
		}
	}
	if len(questions) == 0 {
		t.logger().Warn("skipping exercise without questions", "id", v.ID, "title", v.Title())
		return nil, nil
	}

	node := t.newNode(coursechef.ContentExercise, qualifiedTitle(parentTitle, v.Title()), v.ID, description)
	node.Questions = questions
	node.Mastery = coursechef.NewMastery(len(questions))
	return node, nil
}

// video converts a video vertical. Resources linked from its html children
// go to the chapter pool.
func (t *courseTransform) video(v *coursechef.Node, parentTitle string) (*coursechef.ContentNode, []coursechef.Resource, error) {
	var (
		videos      []*coursechef.Node
		description string
		pool        []coursechef.Resource
	)
	for i, child := range v.Children {
		switch child.Kind {
		case coursechef.KindVideo:
			videos = append(videos, child)
		case coursechef.KindHTML:
			if i == 0 {
				description = child.Text
			}
			pool = append(pool, child.Resources...)
		}
	}
	if len(videos) != 1 {
		return nil, nil, coursechef.Errorf(coursechef.EASSUMPTION, "too many videos found in vertical %s: %d", v.ID, len(videos))
	}

	file := coursechef.File{Type: coursechef.FileVideo}
	if id := videos[0].YoutubeID; id != "" {
		file.YoutubeID = id
	} else {
		file.Path = t.staticPath(videos[0].Path)
	}

	node := t.newNode(coursechef.ContentVideo, qualifiedTitle(parentTitle, v.Title()), v.ID, description)
	node.Files = []coursechef.File{file}
	return node, pool, nil
}

// html converts an html vertical from its first html child. Local PDFs
// become documents and other resources go to the chapter pool; a fragment
// without resources is packaged as a standalone page.
func (t *courseTransform) html(v *coursechef.Node) ([]*coursechef.ContentNode, []coursechef.Resource, error) {
	if len(v.Children) == 0 {
		return nil, nil, nil
	}
	if len(v.Children) > 1 {
		t.logger().Info("ignoring extra html children", "id", v.ID, "count", len(v.Children)-1)
	}
	first := v.Children[0]

	if len(first.Resources) == 0 {
		page, err := t.Pages.StandalonePage(first.Content)
		if err != nil {
			return nil, nil, err
		}
		path, err := t.Bundler.WriteBundle(t.ctx, bundleName(t.courseID, first.ID), []coursechef.BundleEntry{
			{Name: indexFile, Data: []byte(page)},
		})
		if err != nil {
			return nil, nil, err
		}
		node := t.newNode(coursechef.ContentHTML5, v.Title(), first.ID, first.Text)
		node.Files = []coursechef.File{{Type: coursechef.FileHTML5, Path: path}}
		return []*coursechef.ContentNode{node}, nil, nil
	}

	var (
		nodes []*coursechef.ContentNode
		pool  []coursechef.Resource
	)
	for _, r := range first.Resources {
		if r.Ext != "pdf" || r.External {
			pool = append(pool, r)
			continue
		}
		if r.Missing {
			t.logger().Warn("skipping missing document", "id", v.ID, "href", r.Href)
			continue
		}
		title := r.Title
		if title == "" {
			title = strings.TrimSuffix(r.Filename, path.Ext(r.Filename))
		}
		doc := t.newNode(coursechef.ContentDocument, title, v.ID+":"+r.Filename, "")
		doc.Files = []coursechef.File{{Type: coursechef.FileDocument, Path: r.RelPath}}
		nodes = append(nodes, doc)
	}
	return nodes, pool, nil
}

// thumbnail resolves the course image under static/. A missing image
// leaves the course without a thumbnail.
func (t *courseTransform) thumbnail(root *coursechef.Node) string {
	image := root.Attrs[coursechef.AttrCourseImage]
	if image == "" {
		return ""
	}
	p, ok := t.Locator.Locate(t.dir, "/static/"+image)
	if !ok {
		t.logger().Warn("course thumbnail not found", "path", p)
		return ""
	}
	return p
}

// staticPath resolves course-relative video paths; other paths are kept.
func (t *courseTransform) staticPath(p string) string {
	if !strings.HasPrefix(p, "/static") {
		return p
	}
	resolved, ok := t.Locator.Locate(t.dir, p)
	if !ok {
		t.logger().Warn("video file not found", "path", resolved)
	}
	return resolved
}

func (t *courseTransform) newNode(kind coursechef.ContentKind, title, sourceID, description string) *coursechef.ContentNode {
	n := &coursechef.ContentNode{
		Kind:        kind,
		Title:       title,
		SourceID:    sourceID,
		Description: description,
		Author:      t.Author,
		Language:    t.Language,
	}
	if t.License != nil {
		license := *t.License
		n.License = &license
	}
	return n
}

func (t *Transformer) vocabulary() *coursechef.Vocabulary {
	if t.Vocabulary == nil {
		return coursechef.DefaultVocabulary()
	}
	return t.Vocabulary
}

func (t *Transformer) logger() *slog.Logger {
	return loggerOrDiscard(t.Logger)
}

// qualifiedTitle prefixes title with its parent's title unless title
// already contains it.
func qualifiedTitle(parent, title string) string {
	switch {
	case parent == "":
		return title
	case title == "":
		return parent
	case strings.Contains(title, parent):
		return title
	}
	return parent + " " + title
}

func bundleName(courseID, sourceID string) string {
	return courseID + "/" + sourceID + ".zip"
}
