package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data in the success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, SuccessResp{
		Success: true,
		Data:    data,
	})
}

// Fail sends a classified failure with the given HTTP status.
func Fail(c *gin.Context, status int, errorCode, message string) {
	c.JSON(status, ErrorResp{
		Success:   false,
		ErrorCode: errorCode,
		Message:   message,
	})
}

// FailWithLLMError sends a classified failure carrying the original
// provider error text alongside the canonical message.
func FailWithLLMError(c *gin.Context, status int, errorCode, message, llmError string) {
	c.JSON(status, ErrorResp{
		Success:         false,
		ErrorCode:       errorCode,
		Message:         message,
		LLMErrorMessage: llmError,
	})
}
