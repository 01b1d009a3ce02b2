package coursechef

import "strings"

// bulletReplacer normalizes bullet variants to a single glyph.
var bulletReplacer = strings.NewReplacer(
	"* · ", "•",
	"·", "•",
	"●", "•",
	"*", "•",
)

// CleanText flattens markdown into a single paragraph: emphasis and heading
// markup is stripped, bullets are normalized, blank lines are dropped and the
// remaining lines are joined with single spaces.
func CleanText(markdown string) string {
	var lines []string
	for _, line := range strings.Split(markdown, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = strings.ReplaceAll(line, "###", "")
		line = strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
		line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		line = bulletReplacer.Replace(line)
		line = strings.TrimPrefix(line, "_")
		line = strings.TrimSuffix(line, "_")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " ")
}
