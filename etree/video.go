package etree

import (
	"strings"

	"github.com/fwojciec/coursechef"
)

// Ensure VideoParser implements coursechef.VideoParser at compile time.
var _ coursechef.VideoParser = (*VideoParser)(nil)

// VideoParser extracts playable references from video fragments.
type VideoParser struct{}

// NewVideoParser creates a new VideoParser.
func NewVideoParser() *VideoParser {
	return &VideoParser{}
}

// ParseVideo tries, in order: a youtube encoded_video profile, a generic
// source element, and the legacy youtube_id_1_0 attribute.
func (p *VideoParser) ParseVideo(xml string) (coursechef.VideoRef, error) {
	doc, err := parseString(xml)
	if err != nil {
		return coursechef.VideoRef{}, err
	}

	if el := doc.FindElement("//encoded_video[@profile='youtube']"); el != nil {
		if id := strings.TrimSpace(el.SelectAttrValue("url", "")); id != "" {
			return coursechef.VideoRef{YoutubeID: id}, nil
		}
	}

	if el := doc.FindElement("//source"); el != nil {
		if src := strings.TrimSpace(el.SelectAttrValue("src", "")); src != "" {
			return coursechef.VideoRef{Path: src}, nil
		}
	}

	for _, el := range doc.FindElements("//video") {
		if id := strings.TrimSpace(el.SelectAttrValue("youtube_id_1_0", "")); id != "" {
			return coursechef.VideoRef{YoutubeID: id}, nil
		}
	}

	return coursechef.VideoRef{}, coursechef.Errorf(coursechef.EVIDEOFORMAT, "unrecognized video format")
}
