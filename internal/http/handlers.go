package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"safewatch-chatbot/internal/core"
	"safewatch-chatbot/pkg"
)

// Server bundles together the dependencies required by HTTP handlers.  It
// implements http.Handler so it can be passed to http.ListenAndServe.
type Server struct {
	Chat *core.ChatService
}

// NewServer constructs a Server around the chat service.
func NewServer(chat *core.ChatService) *Server {
	return &Server{Chat: chat}
}

// ServeHTTP dispatches incoming requests based on the URL path.  Minimal
// routing logic is implemented here to keep dependencies light.  Every
// response carries permissive CORS headers so a browser frontend on any
// origin can talk to the API.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	switch {
	case r.URL.Path == "/api/chat" && r.Method == http.MethodPost:
		s.handleChat(w, r)
	case r.URL.Path == "/api/health" && r.Method == http.MethodGet:
		s.handleHealth(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleChat decodes the chat request, resolves it through the chat
// service and writes the JSON response. The service itself never fails;
// the only error path here is a malformed request body.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req pkg.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	resp := s.Chat.Handle(r.Context(), strings.TrimSpace(req.Message))
	writeJSON(w, resp)
}

// handleHealth reports liveness for load balancers and uptime checks.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeCORS allows any origin. In production this should be narrowed to
// the frontend URL.
func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
