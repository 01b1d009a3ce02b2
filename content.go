package coursechef

// ContentKind identifies a node kind accepted by the target platform.
type ContentKind string

// ContentKind constants.
const (
	ContentTopic    ContentKind = "topic"
	ContentExercise ContentKind = "exercise"
	ContentVideo    ContentKind = "video"
	ContentDocument ContentKind = "document"
	ContentHTML5    ContentKind = "html5"
)

// FileType identifies a file reference attached to a content node.
type FileType string

// FileType constants.
const (
	FileVideo     FileType = "video"
	FileDocument  FileType = "document"
	FileHTML5     FileType = "html5"
	FileThumbnail FileType = "thumbnail"
)

// File references a local file or an external video-host id.
type File struct {
	Type      FileType `json:"fileType"`
	Path      string   `json:"path,omitempty"`
	YoutubeID string   `json:"youtubeId,omitempty"`
}

// License is attached verbatim to every emitted node.
type License struct {
	ID              string `json:"licenseId" yaml:"id"`
	CopyrightHolder string `json:"copyrightHolder" yaml:"copyright_holder"`
}

// MasteryMofN is the "M correct out of N" mastery model.
const MasteryMofN = "m_of_n"

// DefaultMasteryM is the number of correct answers required when an exercise
// has at least that many questions.
const DefaultMasteryM = 5

// Mastery holds an exercise's completion policy.
type Mastery struct {
	Model     string `json:"masteryModel"`
	M         int    `json:"m"`
	N         int    `json:"n"`
	Randomize bool   `json:"randomize"`
}

// NewMastery returns the M-of-N policy for an exercise with count questions:
// DefaultMasteryM correct, or all of them when there are fewer.
func NewMastery(count int) *Mastery {
	m := min(DefaultMasteryM, count)
	return &Mastery{Model: MasteryMofN, M: m, N: m}
}

// ContentNode is one node of the target platform's tree. It carries no
// reference back to the source node it was projected from.
type ContentNode struct {
	Kind        ContentKind    `json:"kind"`
	Title       string         `json:"title"`
	SourceID    string         `json:"sourceId"`
	Description string         `json:"description"`
	Author      string         `json:"author,omitempty"`
	Language    string         `json:"language"`
	License     *License       `json:"license,omitempty"`
	Thumbnail   string         `json:"thumbnail,omitempty"`
	Files       []File         `json:"files,omitempty"`
	Questions   []Question     `json:"questions,omitempty"`
	Mastery     *Mastery       `json:"exerciseData,omitempty"`
	Children    []*ContentNode `json:"children,omitempty"`
}

// Channel is the root record handed to the platform uploader.
type Channel struct {
	Title        string         `json:"title"`
	SourceDomain string         `json:"sourceDomain"`
	SourceID     string         `json:"sourceId"`
	Description  string         `json:"description"`
	Thumbnail    string         `json:"thumbnail,omitempty"`
	Language     string         `json:"language"`
	Children     []*ContentNode `json:"children"`
}
