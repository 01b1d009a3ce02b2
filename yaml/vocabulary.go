// Package yaml loads vocabulary overrides from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/coursechef"
	"gopkg.in/yaml.v3"
)

// LoadVocabulary reads the YAML file at path and applies it on top of base.
// Keys absent from the file keep base's values; a key that is present
// replaces the whole list. Unknown keys are rejected.
func LoadVocabulary(path string, base *coursechef.Vocabulary) (*coursechef.Vocabulary, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, coursechef.Errorf(coursechef.ENOTFOUND, "vocabulary file not found: %s", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var v coursechef.Vocabulary
	if base != nil {
		v = *base
	}

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		return nil, coursechef.Errorf(coursechef.EINVALID, "parsing vocabulary %s: %v", path, err)
	}

	return &v, nil
}
