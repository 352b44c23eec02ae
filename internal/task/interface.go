package task

import (
	"context"

	"github.com/bonellirj/EchoDoTTT/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Process converts free-form user text into a structured task via the
	// selected LLM provider. On failure the returned error is a *task.Error
	// carrying a stable failure code.
	Process(ctx context.Context, input ProcessInput) (model.Task, error)
}
