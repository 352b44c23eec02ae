package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ReferenceDatePlaceholder is the literal token the stored prompt template
// carries where the reference date belongs.
const ReferenceDatePlaceholder = "${new Date().toISOString()}"

// referenceDateOffset is a fixed shift applied when rendering the
// reference date. Intent is undocumented upstream; keep in sync with the
// stored prompt before changing it.
const referenceDateOffset = 6 * time.Hour

// unixSecondsRe matches a 10-digit unix-seconds timestamp.
var unixSecondsRe = regexp.MustCompile(`^\d{10}$`)

// renderReferenceDate derives the prompt reference date from an optional
// caller-supplied 10-digit unix-seconds timestamp, falling back to now.
// The result is ISO-8601 without fractional seconds. It anchors only the
// model's relative-date reasoning; due-date validation never uses it.
func renderReferenceDate(userTimestamp string, now time.Time) string {
	ref := now
	if unixSecondsRe.MatchString(userTimestamp) {
		if secs, err := strconv.ParseInt(userTimestamp, 10, 64); err == nil {
			ref = time.Unix(secs, 0)
		}
	}
	return ref.UTC().Add(referenceDateOffset).Format("2006-01-02T15:04:05Z07:00")
}

// renderPrompt substitutes the reference-date placeholder in the stored
// template. The template itself is never mutated or re-stored.
func renderPrompt(template, referenceDate string) string {
	return strings.TrimSpace(strings.ReplaceAll(template, ReferenceDatePlaceholder, referenceDate))
}
