// Package mcp exposes the conversation stepper to MCP hosts: tools to
// advance and reset a session, and a resource describing the script.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	soulmate "github.com/404-atomic/soulmate-flow"
	"github.com/404-atomic/soulmate-flow/pkg/domain"
	"github.com/404-atomic/soulmate-flow/pkg/session"
)

// StepResponse is the structured result of the advance/transcript tools.
type StepResponse struct {
	Cursor     int           `json:"cursor" jsonschema_description:"Count of steps already executed"`
	Total      int           `json:"total" jsonschema_description:"Total steps in the script"`
	Finished   bool          `json:"finished" jsonschema_description:"True when no steps remain"`
	Reply      string        `json:"reply,omitempty" jsonschema_description:"Assistant reply for the step just executed"`
	Transcript []domain.Turn `json:"transcript" jsonschema_description:"Conversation turns so far"`
}

// Sequencer defines the interface required by the MCP server.
type Sequencer interface {
	Script() domain.Script
	HasNext(state *domain.State) bool
	Advance(ctx context.Context, state *domain.State) (string, error)
	Reset(state *domain.State)
}

// Server wraps the sequencer and exposes it as an MCP server.
type Server struct {
	seq       Sequencer
	sessions  *session.Manager
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(seq Sequencer, sessions *session.Manager) *Server {
	s := &Server{
		seq:       seq,
		sessions:  sessions,
		mcpServer: server.NewMCPServer("soulmate-flow", soulmate.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: advance
	advanceTool := mcp.NewTool("advance",
		mcp.WithDescription("Execute the next step of the scripted conversation for a session. Fails when no steps remain."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier; a fresh ID starts at step 0")),
		mcp.WithOutputSchema[StepResponse](),
	)
	s.mcpServer.AddTool(advanceTool, mcp.NewStructuredToolHandler(s.handleAdvance))

	// TOOL: reset
	resetTool := mcp.NewTool("reset",
		mcp.WithDescription("Return a session to the start of the sequence, clearing its transcript."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithOutputSchema[StepResponse](),
	)
	s.mcpServer.AddTool(resetTool, mcp.NewStructuredToolHandler(s.handleReset))

	// TOOL: get_transcript
	transcriptTool := mcp.NewTool("get_transcript",
		mcp.WithDescription("Return the transcript and cursor position for a session without advancing it."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithOutputSchema[StepResponse](),
	)
	s.mcpServer.AddTool(transcriptTool, mcp.NewStructuredToolHandler(s.handleTranscript))
}

func (s *Server) handleAdvance(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StepResponse, error) {
	sessionID, _ := args["session_id"].(string)
	if sessionID == "" {
		return StepResponse{}, fmt.Errorf("session_id is required")
	}

	var reply string
	err := s.sessions.Update(ctx, sessionID, func(state *domain.State) error {
		var err error
		reply, err = s.seq.Advance(ctx, state)
		return err
	})
	if err != nil {
		return StepResponse{}, fmt.Errorf("advance failed: %w", err)
	}

	resp, err := s.snapshot(ctx, sessionID)
	if err != nil {
		return StepResponse{}, err
	}
	resp.Reply = reply
	return resp, nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StepResponse, error) {
	sessionID, _ := args["session_id"].(string)
	if sessionID == "" {
		return StepResponse{}, fmt.Errorf("session_id is required")
	}

	err := s.sessions.Update(ctx, sessionID, func(state *domain.State) error {
		s.seq.Reset(state)
		return nil
	})
	if err != nil {
		return StepResponse{}, fmt.Errorf("reset failed: %w", err)
	}

	return s.snapshot(ctx, sessionID)
}

func (s *Server) handleTranscript(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StepResponse, error) {
	sessionID, _ := args["session_id"].(string)
	if sessionID == "" {
		return StepResponse{}, fmt.Errorf("session_id is required")
	}

	return s.snapshot(ctx, sessionID)
}

// snapshot reads the session state without mutating it. Missing sessions
// read as a fresh state at cursor zero.
func (s *Server) snapshot(ctx context.Context, sessionID string) (StepResponse, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		state = domain.NewState()
	}

	return StepResponse{
		Cursor:     state.Cursor,
		Total:      s.seq.Script().Len(),
		Finished:   !s.seq.HasNext(state),
		Transcript: state.Transcript,
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: soulmate://script
	s.mcpServer.AddResource(mcp.NewResource("soulmate://script", "Conversation Script",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.seq.Script())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal script: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "soulmate://script",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
