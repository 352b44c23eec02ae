package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bonellirj/EchoDoTTT/internal/model"
	"github.com/bonellirj/EchoDoTTT/internal/task"
	"github.com/bonellirj/EchoDoTTT/pkg/llmprovider"
)

// Process runs the full text-to-task pipeline: provider selection,
// reference-date rendering, one provider call, reply extraction, then
// either error classification or task validation. Every path terminates
// in exactly one outcome; nothing is retried.
func (uc *implUseCase) Process(ctx context.Context, input task.ProcessInput) (model.Task, error) {
	uc.audit.RequestStart(ctx, input.TransactionID, input.UserText, input.Provider)

	provider, err := uc.providers.Select(input.Provider)
	if err != nil {
		return model.Task{}, uc.fail(ctx, input, uc.selectionError(input.Provider, err))
	}

	referenceDate := renderReferenceDate(input.UserTimestamp, time.Now())
	systemPrompt := renderPrompt(input.PromptTemplate, referenceDate)

	uc.audit.ProviderCall(ctx, input.TransactionID, provider.Name(), provider.Model())

	rawText, err := provider.Chat(ctx, systemPrompt, input.UserText)
	if err != nil {
		uc.l.Errorf(ctx, "task usecase: %s call failed: %v", input.Provider, err)
		failure := task.NewError(task.CodeLLMTimeout,
			fmt.Sprintf("%s API timeout or unavailable", strings.ToUpper(input.Provider)))
		failure.OriginalText = input.UserText
		return model.Task{}, uc.fail(ctx, input, failure)
	}

	uc.l.Debugf(ctx, "task usecase: %s raw response: %s", input.Provider, rawText)

	if strings.TrimSpace(rawText) == "" {
		failure := task.NewError(task.CodeLLMEmptyResponse, "LLM returned empty or invalid response")
		failure.OriginalText = input.UserText
		return model.Task{}, uc.fail(ctx, input, failure)
	}

	parsed, ok := extractReply(rawText)
	if !ok {
		uc.l.Errorf(ctx, "task usecase: failed to parse LLM response as JSON: %q", rawText)
		failure := task.NewError(task.CodeLLMBadResponse, "LLM response could not be parsed as JSON")
		failure.OriginalText = input.UserText
		return model.Task{}, uc.fail(ctx, input, failure)
	}

	// The prompt makes the error and task shapes mutually exclusive, but
	// the reply is untrusted: check which shape is actually present.
	if errText, isErr := parsed["error"].(string); isErr {
		failure := classifyLLMError(errText)
		failure.OriginalText = input.UserText
		return model.Task{}, uc.fail(ctx, input, failure)
	}

	builtTask, vErr := validateTask(parsed, time.Now(), provider.Name(), provider.Model())
	if vErr != nil {
		vErr.OriginalText = input.UserText
		if replyJSON, mErr := json.Marshal(parsed); mErr == nil {
			vErr.TaskJSON = string(replyJSON)
		}
		return model.Task{}, uc.fail(ctx, input, vErr)
	}

	if taskJSON, mErr := json.Marshal(builtTask); mErr == nil {
		uc.audit.RequestSuccess(ctx, input.TransactionID, string(taskJSON))
	}

	return builtTask, nil
}

// selectionError maps a registry selection failure to its classified code.
// An unknown provider id never reaches the network.
func (uc *implUseCase) selectionError(providerID string, err error) *task.Error {
	if errors.Is(err, llmprovider.ErrProviderUnavailable) {
		return task.NewError(task.CodeLLMUnavailable,
			fmt.Sprintf("%s API key not configured", strings.ToUpper(providerID)))
	}
	return task.NewError(task.CodeInvalidLLM,
		fmt.Sprintf("Invalid LLM provider. Supported: %s", strings.Join(uc.providers.Names(), ", ")))
}

// fail emits the failure audit event and returns the classified error.
func (uc *implUseCase) fail(ctx context.Context, input task.ProcessInput, failure *task.Error) *task.Error {
	uc.audit.RequestError(ctx, input.TransactionID, failure.Code, failure.Message,
		task.HTTPStatus(failure.Code), failure.OriginalText, failure.TaskJSON)
	return failure
}
