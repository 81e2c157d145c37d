//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// fakeAssistant scripts one Assistants API run: the first status check asks for a
// tool call, the run completes once the tool output is submitted.
type fakeAssistant struct {
	mu        sync.Mutex
	toolName  string
	arguments string
	reply     string
	submitted []map[string]any
	completed bool
}

func newFakeAssistant(toolName string, arguments any, reply string) *fakeAssistant {
	args, _ := json.Marshal(arguments)
	return &fakeAssistant{toolName: toolName, arguments: string(args), reply: reply}
}

func (f *fakeAssistant) reset(toolName string, arguments any, reply string) {
	args, _ := json.Marshal(arguments)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toolName, f.arguments, f.reply = toolName, string(args), reply
	f.submitted = nil
	f.completed = false
}

func (f *fakeAssistant) outputs() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.submitted...)
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

func (f *fakeAssistant) server() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/threads", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":"thread_it","object":"thread"}`)
	})
	mux.HandleFunc("POST /v1/threads/thread_it/messages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":"msg_user","object":"thread.message","role":"user"}`)
	})
	mux.HandleFunc("POST /v1/threads/thread_it/runs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":"run_it","thread_id":"thread_it","status":"queued"}`)
	})
	mux.HandleFunc("GET /v1/threads/thread_it/runs/run_it", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.completed {
			writeJSON(w, `{"id":"run_it","thread_id":"thread_it","status":"completed"}`)
			return
		}
		call, _ := json.Marshal(map[string]any{
			"id":   "call_it",
			"type": "function",
			"function": map[string]string{
				"name":      f.toolName,
				"arguments": f.arguments,
			},
		})
		writeJSON(w, fmt.Sprintf(
			`{"id":"run_it","thread_id":"thread_it","status":"requires_action","required_action":{"type":"submit_tool_outputs","submit_tool_outputs":{"tool_calls":[%s]}}}`,
			call,
		))
	})
	mux.HandleFunc("POST /v1/threads/thread_it/runs/run_it/submit_tool_outputs", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ToolOutputs []map[string]any `json:"tool_outputs"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.submitted = append(f.submitted, body.ToolOutputs...)
		f.completed = true
		f.mu.Unlock()

		writeJSON(w, `{"id":"run_it","thread_id":"thread_it","status":"queued"}`)
	})
	mux.HandleFunc("GET /v1/threads/thread_it/runs/run_it/steps", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"object":"list","data":[]}`)
	})
	mux.HandleFunc("GET /v1/threads/thread_it/messages", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		reply, _ := json.Marshal(f.reply)
		f.mu.Unlock()
		writeJSON(w, fmt.Sprintf(
			`{"object":"list","data":[{"id":"msg_reply","role":"assistant","content":[{"type":"text","text":{"value":%s,"annotations":[]}}]}]}`,
			reply,
		))
	})
	return httptest.NewServer(mux)
}
