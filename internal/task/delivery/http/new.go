package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/bonellirj/EchoDoTTT/internal/task"
	"github.com/bonellirj/EchoDoTTT/pkg/auditlog"
	pkgLog "github.com/bonellirj/EchoDoTTT/pkg/log"
)

// Handler is the interface for the task HTTP delivery handler.
type Handler interface {
	ParseTask(c *gin.Context)
}

// PromptLoader loads a stored system prompt template by id.
type PromptLoader interface {
	Load(ctx context.Context, promptID string) (string, error)
}

type handler struct {
	l        pkgLog.Logger
	uc       task.UseCase
	prompts  PromptLoader
	promptID string
	audit    auditlog.Logger
}

// New creates a new task HTTP delivery handler.
func New(
	l pkgLog.Logger,
	uc task.UseCase,
	prompts PromptLoader,
	promptID string,
	audit auditlog.Logger,
) Handler {
	if audit == nil {
		audit = auditlog.Nop{}
	}
	return &handler{
		l:        l,
		uc:       uc,
		prompts:  prompts,
		promptID: promptID,
		audit:    audit,
	}
}
