package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/common"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-appointments/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAppointmentServer_ProcessUserMessage(t *testing.T) {
	tests := map[string]struct {
		target         string
		requestBody    []byte
		setupMocks     func(m *usecases.MockProcessUserMessage)
		expectedStatus int
		expectedBody   *gen.MessageResp
		expectedError  *gen.ErrorResp
	}{
		"success": {
			target:      "/process-user-message/",
			requestBody: serializeJSON(t, gen.ProcessUserMessageReq{UserMessage: common.Ptr("Book John Doe tomorrow at 3pm")}),
			setupMocks: func(m *usecases.MockProcessUserMessage) {
				m.EXPECT().
					Execute(mock.Anything, "Book John Doe tomorrow at 3pm").
					Return("Done! John Doe is booked for tomorrow at 15:00.", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.MessageResp{Message: "Done! John Doe is booked for tomorrow at 15:00."},
		},
		"success-query-parameter": {
			target: "/process-user-message/?user_message=hello",
			setupMocks: func(m *usecases.MockProcessUserMessage) {
				m.EXPECT().Execute(mock.Anything, "hello").Return("Hi! How can I help?", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.MessageResp{Message: "Hi! How can I help?"},
		},
		"empty-message": {
			target:      "/process-user-message/",
			requestBody: []byte(`{"user_message": ""}`),
			setupMocks: func(m *usecases.MockProcessUserMessage) {
				m.EXPECT().
					Execute(mock.Anything, "").
					Return("", domain.NewValidationErr("user_message cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.BADREQUEST, Message: "user_message cannot be empty"},
			},
		},
		"assistant-failure": {
			target:      "/process-user-message/",
			requestBody: serializeJSON(t, gen.ProcessUserMessageReq{UserMessage: common.Ptr("hello")}),
			setupMocks: func(m *usecases.MockProcessUserMessage) {
				m.EXPECT().
					Execute(mock.Anything, "hello").
					Return("", domain.NewAssistantRunErr("failed", "assistant run failed: rate_limit_exceeded: slow down"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.ASSISTANTFAILURE, Message: "the assistant could not process the message"},
			},
		},
		"timeout": {
			target:      "/process-user-message/",
			requestBody: serializeJSON(t, gen.ProcessUserMessageReq{UserMessage: common.Ptr("hello")}),
			setupMocks: func(m *usecases.MockProcessUserMessage) {
				m.EXPECT().
					Execute(mock.Anything, "hello").
					Return("", domain.NewTimeoutErr("assistant run did not finish within 5m0s"))
			},
			expectedStatus: http.StatusGatewayTimeout,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.TIMEOUT, Message: "assistant run did not finish within 5m0s"},
			},
		},
		"transport-error": {
			target:      "/process-user-message/",
			requestBody: serializeJSON(t, gen.ProcessUserMessageReq{UserMessage: common.Ptr("hello")}),
			setupMocks: func(m *usecases.MockProcessUserMessage) {
				m.EXPECT().
					Execute(mock.Anything, "hello").
					Return("", errors.New("failed to create thread: connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.INTERNALERROR, Message: "failed to create thread: connection reset"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server, _, _, _, process := newTestServer(t)
			if tt.setupMocks != nil {
				tt.setupMocks(process)
			}

			req := httptest.NewRequest(http.MethodPost, tt.target, bytes.NewReader(tt.requestBody))
			if tt.requestBody != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedBody != nil {
				var response gen.MessageResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, *tt.expectedBody, response)
			}

			if tt.expectedError != nil {
				var response gen.ErrorResp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedError.Error, response.Error)
			}
		})
	}
}
