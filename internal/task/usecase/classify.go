package usecase

import (
	"strings"

	"github.com/bonellirj/EchoDoTTT/internal/task"
)

// classifyRule maps keyword conjunctions in one language to a canonical
// rejection code. A group matches when every keyword in it appears in the
// lower-cased error text.
type classifyRule struct {
	code     string
	message  string
	language string
	keywords []string
}

// classifyRules is the ordered rule table for the model's free-text error
// declarations. First match wins; rule order follows the canonical codes
// so a new language or phrasing is one more row, not new control flow.
var classifyRules = []classifyRule{
	{task.CodeNotATask, "Input is not a valid task request", "en", []string{"not", "valid", "task"}},
	{task.CodeNotATask, "Input is not a valid task request", "pt", []string{"não", "válida"}},
	{task.CodeNotATask, "Input is not a valid task request", "es", []string{"no es", "válida"}},

	{task.CodeMissingDueDate, "Task request has no due date", "en", []string{"missing", "due"}},
	{task.CodeMissingDueDate, "Task request has no due date", "pt", []string{"data", "ausente"}},
	{task.CodeMissingDueDate, "Task request has no due date", "es", []string{"falta", "fecha"}},

	{task.CodePastDueDate, "Due date is in the past", "en", []string{"past", "date"}},
	{task.CodePastDueDate, "Due date is in the past", "pt", []string{"passado"}},
	{task.CodePastDueDate, "Due date is in the past", "es", []string{"pasado"}},
}

// classifyLLMError maps a free-text, multi-language error declaration from
// the model to a classified failure. The original provider text is always
// preserved on the returned error; phrases matching no rule map to
// unknown_error with a fixed fallback message.
func classifyLLMError(errorText string) *task.Error {
	lowered := strings.ToLower(errorText)

	for _, rule := range classifyRules {
		if matchesAll(lowered, rule.keywords) {
			err := task.NewError(rule.code, rule.message)
			err.LLMError = errorText
			return err
		}
	}

	err := task.NewError(task.CodeUnknownError, "Unknown error from LLM")
	err.LLMError = errorText
	return err
}

func matchesAll(text string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}
