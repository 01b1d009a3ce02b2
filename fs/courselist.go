package fs

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/coursechef"
)

// CourseListFile is the listing written by the archive extraction step.
const CourseListFile = "course_list.json"

// ReadCourseList reads a course listing. Relative course paths are
// resolved against the listing's directory.
func ReadCourseList(path string) (*coursechef.CourseList, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, coursechef.Errorf(coursechef.ENOTFOUND, "course list not found: %s", path)
	} else if err != nil {
		return nil, err
	}

	var list coursechef.CourseList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, coursechef.Errorf(coursechef.EINVALID, "invalid course list %s: %v", path, err)
	}

	base := filepath.Dir(path)
	for i := range list.Courses {
		c := &list.Courses[i]
		if c.Path == "" && c.Name != "" {
			c.Path = filepath.Join(base, c.Name)
		} else if c.Path != "" && !filepath.IsAbs(c.Path) {
			c.Path = filepath.Join(base, c.Path)
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}

	return &list, nil
}
