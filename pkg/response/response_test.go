package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"tugasku/pkg/response"
)

func TestWriters(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tcs := map[string]struct {
		write       func(c *gin.Context)
		wantStatus  int
		wantCode    int
		wantMessage string
		wantData    bool
		wantAborted bool
	}{
		"ok": {
			write:       func(c *gin.Context) { response.OK(c, map[string]string{"tugas": "PR"}) },
			wantStatus:  http.StatusOK,
			wantMessage: response.MessageSuccess,
			wantData:    true,
		},
		"plain error is a bad request": {
			write:       func(c *gin.Context) { response.Error(c, errors.New("pesan kosong"), nil) },
			wantStatus:  http.StatusBadRequest,
			wantCode:    1,
			wantMessage: "pesan kosong",
			wantData:    true,
		},
		"wrapped http error keeps its status": {
			write: func(c *gin.Context) {
				response.Error(c, fmt.Errorf("lookup: %w", response.NewHTTPError(http.StatusNotFound, "session not found")), nil)
			},
			wantStatus:  http.StatusNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: "session not found",
			wantData:    true,
		},
		"internal error hides the cause": {
			write:       func(c *gin.Context) { response.InternalError(c, errors.New("disk on fire")) },
			wantStatus:  http.StatusInternalServerError,
			wantCode:    response.InternalServerErrorCode,
			wantMessage: response.DefaultErrorMessage,
		},
		"too many requests aborts": {
			write:       response.TooManyRequests,
			wantStatus:  http.StatusTooManyRequests,
			wantCode:    response.TooManyRequestsCode,
			wantMessage: "Too many requests",
			wantAborted: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tc.write(c)

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if c.IsAborted() != tc.wantAborted {
				t.Errorf("aborted = %v, want %v", c.IsAborted(), tc.wantAborted)
			}

			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if resp.ErrorCode != tc.wantCode {
				t.Errorf("error_code = %d, want %d", resp.ErrorCode, tc.wantCode)
			}
			if resp.Message != tc.wantMessage {
				t.Errorf("message = %q, want %q", resp.Message, tc.wantMessage)
			}
			if (resp.Data != nil) != tc.wantData {
				t.Errorf("data = %#v, want present %v", resp.Data, tc.wantData)
			}
		})
	}
}
