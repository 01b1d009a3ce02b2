package coursechef

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SimilarTitleThreshold is the minimum TitleSimilarity at which two titles
// are considered the same.
const SimilarTitleThreshold = 92

// TitleSimilarity returns the normalized edit similarity of a and b on a
// 0..100 scale: twice the number of matching runes over the total rune count.
func TitleSimilarity(a, b string) int {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMain(a, b, false)

	matched := 0
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			matched += utf8.RuneCountInString(d.Text)
		}
	}
	// Rounded like a percentage ratio.
	return (200*matched + total/2) / total
}

// SimilarTitles reports whether two titles are the same for flattening.
func SimilarTitles(a, b string) bool {
	return TitleSimilarity(a, b) >= SimilarTitleThreshold
}
