package coursechef

import "path/filepath"

// CourseList is the listing of staged courses written by the extraction step.
type CourseList struct {
	Title   string       `json:"title"`
	Kind    string       `json:"kind"`
	Courses []CourseInfo `json:"courses"`
}

// CourseInfo locates one staged course.
type CourseInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Lang string `json:"lang"`
}

// Validate returns an error if the course info contains invalid fields.
func (c *CourseInfo) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "course name required")
	}
	if c.Path == "" {
		return Errorf(EINVALID, "course path required")
	}
	return nil
}

// Dir returns the course directory holding course.xml.
func (c *CourseInfo) Dir() string {
	return filepath.Join(c.Path, "course")
}
