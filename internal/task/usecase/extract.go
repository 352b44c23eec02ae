package usecase

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fenceRe strips markdown code fences ("```json" in any case, bare "```")
// that LLMs often wrap around JSON output.
var fenceRe = regexp.MustCompile("(?i)```json\\s*|```\\s*")

// extractReply cleans markdown fencing from a raw LLM reply and parses it
// as JSON. A parse failure returns (nil, false): an unparseable reply is an
// expected, classifiable outcome, not a programming error. No schema
// validation happens here; shape checking belongs to the classifier and
// the validator.
func extractReply(rawText string) (map[string]any, bool) {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(rawText, ""))

	var parsed map[string]any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, false
	}
	return parsed, true
}
