package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bonellirj/EchoDoTTT/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"title": "Buy milk"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d, got %d", http.StatusOK, w.Code)
		}

		var resp response.SuccessResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if !resp.Success {
			t.Errorf("expected success true")
		}
		dMap, ok := resp.Data.(map[string]any)
		if !ok || dMap["title"] != "Buy milk" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("Fail", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Fail(c, 422, "not_a_task", "Input is not a valid task request")

		if w.Code != 422 {
			t.Errorf("expected 422, got %d", w.Code)
		}

		var resp response.ErrorResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.Success || resp.ErrorCode != "not_a_task" {
			t.Errorf("unexpected response: %+v", resp)
		}
		if strings.Contains(w.Body.String(), "llm_error_message") {
			t.Errorf("llm_error_message must be omitted when empty")
		}
	})

	t.Run("Fail With LLM Error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.FailWithLLMError(c, 422, "unknown_error", "Unknown error from LLM", "o pedido não faz sentido")

		var resp response.ErrorResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.LLMErrorMessage != "o pedido não faz sentido" {
			t.Errorf("expected provider text carried, got %q", resp.LLMErrorMessage)
		}
	})
}
