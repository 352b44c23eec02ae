package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bonellirj/EchoDoTTT/internal/task"
	"github.com/bonellirj/EchoDoTTT/pkg/auditlog"
	"github.com/bonellirj/EchoDoTTT/pkg/response"
)

// ParseTask godoc
// @Summary     Parse free text into a task
// @Description Sends the text to the selected LLM provider and returns a structured task or a classified failure.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseTaskReq true "User text, provider id and optional unix-seconds timestamp"
// @Success     200 {object} response.SuccessResp
// @Failure     400 {object} response.ErrorResp "missing_input / invalid_llm"
// @Failure     422 {object} response.ErrorResp "not_a_task / missing_due_date / past_due_date"
// @Failure     502 {object} response.ErrorResp "llm_bad_response / llm_empty_response / llm_invalid_structure"
// @Failure     503 {object} response.ErrorResp "llm_unavailable"
// @Failure     504 {object} response.ErrorResp "llm_timeout"
// @Router      /api/v1/tasks [POST]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()
	transactionID := auditlog.NewTransactionID()

	var req parseTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "task handler: failed to parse request: %v", err)
		h.rejectInput(c, transactionID, req.Text)
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		h.rejectInput(c, transactionID, req.Text)
		return
	}

	provider := req.LLM
	if provider == "" {
		provider = defaultProvider
	}

	template, err := h.prompts.Load(ctx, h.promptID)
	if err != nil {
		h.l.Errorf(ctx, "task handler: failed to load system prompt: %v", err)
		response.Fail(c, 500, "prompt_loading_failed", "Failed to load system prompt configuration")
		return
	}

	output, err := h.uc.Process(ctx, task.ProcessInput{
		UserText:       req.Text,
		Provider:       provider,
		PromptTemplate: template,
		UserTimestamp:  req.UserTimestamp,
		TransactionID:  transactionID,
	})
	if err != nil {
		h.respondFailure(c, task.AsError(err))
		return
	}

	response.OK(c, output)
}

// rejectInput writes the missing_input failure and records it.
func (h *handler) rejectInput(c *gin.Context, transactionID, originalText string) {
	h.audit.RequestError(c.Request.Context(), transactionID, task.CodeMissingInput,
		"Missing or invalid input", task.HTTPStatus(task.CodeMissingInput), originalText, "")
	response.Fail(c, task.HTTPStatus(task.CodeMissingInput), task.CodeMissingInput, "Missing or invalid input")
}

// respondFailure writes a classified failure. The provider's original error
// text rides along for semantic rejections, except past_due_date where the
// canonical message is the whole story.
func (h *handler) respondFailure(c *gin.Context, failure *task.Error) {
	status := task.HTTPStatus(failure.Code)

	if failure.LLMError != "" && failure.Code != task.CodePastDueDate {
		response.FailWithLLMError(c, status, failure.Code, failure.Message, failure.LLMError)
		return
	}
	response.Fail(c, status, failure.Code, failure.Message)
}
