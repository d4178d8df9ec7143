package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"nhooyr.io/websocket" //nolint:staticcheck // TODO: migrate to github.com/coder/websocket

	"github.com/studi-app/studi-api/pkg/types"
)

// writeTimeout bounds a single WebSocket frame write.
const writeTimeout = 10 * time.Second

// AgentSocket serves the persistent-channel endpoint for real-time agent
// interaction. Each connection runs its own read-synthesize-respond loop:
// one response frame per input frame, until the peer disconnects.
type AgentSocket struct {
	backend        AgentBackend
	originPatterns []string
}

// NewAgentSocket creates an AgentSocket. originPatterns follow the
// websocket.AcceptOptions format (host[:port], no scheme).
func NewAgentSocket(backend AgentBackend, originPatterns []string) *AgentSocket {
	return &AgentSocket{
		backend:        backend,
		originPatterns: originPatterns,
	}
}

// socketError is the error frame sent for malformed or failed messages.
type socketError struct {
	Error string `json:"error"`
}

// ServeHTTP upgrades the connection and runs the query/response loop.
func (s *AgentSocket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{ //nolint:staticcheck // TODO: migrate to github.com/coder/websocket
		OriginPatterns: s.originPatterns,
	})
	if err != nil {
		log.Printf("ERROR: WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "") //nolint:errcheck

	ctx := r.Context()
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Peer disconnected or the connection failed; exit quietly.
			return
		}

		var msg types.AgentQuery
		if err := json.Unmarshal(data, &msg); err != nil {
			if writeErr := s.writeFrame(ctx, conn, socketError{Error: "Invalid JSON format"}); writeErr != nil {
				return
			}
			continue
		}

		resp, err := s.backend.Respond(ctx, msg.Query, msg.Context)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			frame := socketError{Error: fmt.Sprintf("Error processing request: %v", err)}
			if writeErr := s.writeFrame(ctx, conn, frame); writeErr != nil {
				return
			}
			continue
		}

		if err := s.writeFrame(ctx, conn, resp); err != nil {
			return
		}
	}
}

// writeFrame marshals the message and writes it as a single text frame
// with a bounded timeout.
func (s *AgentSocket) writeFrame(ctx context.Context, conn *websocket.Conn, message any) error {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ERROR: failed to marshal WebSocket message: %v", err)
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := conn.Write(writeCtx, websocket.MessageText, data); err != nil { //nolint:staticcheck // TODO: migrate to github.com/coder/websocket
		return err
	}
	return nil
}
