package usecase

import (
	"regexp"
	"time"

	"github.com/bonellirj/EchoDoTTT/internal/model"
	"github.com/bonellirj/EchoDoTTT/internal/task"
)

// dueDateRe is the required due_date prefix: fractional seconds and a zone
// suffix may follow, but YYYY-MM-DDTHH:MM:SS must lead.
var dueDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

// dueDateLayouts are tried in order when parsing a due date.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// validateTask checks that a parsed reply has the required task shape and
// that its due date is not already in the past relative to now. The
// comparison anchor is wall-clock time at validation, not the caller's
// reference timestamp.
func validateTask(parsed map[string]any, now time.Time, provider, modelName string) (model.Task, *task.Error) {
	title, titleOK := parsed["title"].(string)
	description, descOK := parsed["description"].(string)
	dueDate, dueOK := parsed["due_date"].(string)

	if !titleOK || !descOK || !dueOK || !dueDateRe.MatchString(dueDate) {
		return model.Task{}, task.NewError(task.CodeLLMInvalidStructure, "LLM response has invalid task structure")
	}

	if dueDateInPast(dueDate, now) {
		return model.Task{}, task.NewError(task.CodePastDueDate, "Due date is in the past")
	}

	return model.Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Meta: model.TaskMeta{
			LLMProvider: provider,
			ModelUsed:   modelName,
		},
	}, nil
}

// dueDateInPast reports whether the due date is strictly before now.
// An unparseable date is treated as past (fail-closed); a date exactly
// equal to now is not past.
func dueDateInPast(dueDate string, now time.Time) bool {
	for _, layout := range dueDateLayouts {
		if parsed, err := time.ParseInLocation(layout, dueDate, time.UTC); err == nil {
			return parsed.Before(now)
		}
	}
	return true
}
