package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/coursechef"
)

// Run executes the print command.
func (c *PrintCmd) Run(deps *Dependencies) error {
	info := coursechef.CourseInfo{Name: filepath.Base(c.Course), Path: c.Course}
	dir := info.Dir()
	titles := c.titleFunc(deps)

	root, err := deps.Chef.Builder.Build(dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursechef.ErrorMessage(err))
		return err
	}

	if c.Stage != string(coursechef.StageOriginal) {
		root, err = deps.Chef.Pruner.Prune(root, dir)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", coursechef.ErrorMessage(err))
			return err
		}
	}

	if c.Stage != string(coursechef.StageTransformed) {
		fmt.Fprint(deps.Stdout, coursechef.FormatTree(root, titles))
		return nil
	}

	topic, err := deps.Chef.Transformer.Transform(deps.Ctx, root, dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursechef.ErrorMessage(err))
		return err
	}
	fmt.Fprint(deps.Stdout, coursechef.FormatContentTree(coursechef.Flatten(topic), titles))
	return nil
}

// titleFunc returns a TitleFunc that appends the English translation to
// each title, or nil when no translator is configured.
func (c *PrintCmd) titleFunc(deps *Dependencies) coursechef.TitleFunc {
	if deps.Translator == nil {
		return nil
	}
	lang := deps.Chef.Transformer.Language
	return func(title string) string {
		translated, err := deps.Translator.Translate(deps.Ctx, title, lang)
		if err != nil {
			deps.Logger.Warn("translation failed", "title", title, "error", err)
			return title
		}
		return title + " (" + translated + ")"
	}
}
