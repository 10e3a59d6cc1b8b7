package console

import (
	"strings"

	"github.com/nkzrv/cyberdeck/internal/domain"
)

// Error prefixes distinguish where a failure originated: argument
// validation inside the console versus a collaborator call.
const (
	parseErrorPrefix = "ERROR: "
	linkErrorPrefix  = "LINK ERROR: "
)

// freeText joins positional arguments into one string and strips quote
// characters. The tokenizer does not interpret quotes, so "Ship release"
// arrives as two tokens carrying their quote marks.
func freeText(args []string) string {
	joined := strings.Join(args, " ")
	joined = strings.ReplaceAll(joined, `"`, "")
	return strings.TrimSpace(joined)
}

// shortID returns the leading characters of a record id for display.
func shortID(id string) string {
	if len(id) <= domain.ShortIDLength {
		return id
	}
	return id[:domain.ShortIDLength]
}

// completionGlyph renders a task's done state for list output.
func completionGlyph(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// splitTags turns a comma-separated flag value into trimmed tags, dropping
// empties.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
