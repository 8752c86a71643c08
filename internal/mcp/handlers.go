// ABOUTME: MCP tool handler implementations for the recall server
// ABOUTME: Bridges tool calls onto the RAG engine and vector store
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/recall/internal/rag"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	engine *rag.Engine
	store  rag.FactStore
}

// IngestFact handles the ingest_fact tool
func (h *Handlers) IngestFact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	id := request.GetString("id", "")
	if id == "" {
		id = uuid.New().String()
	}

	if err := h.engine.Ingest(ctx, id, text); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ingest failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Stored fact %s", id)), nil
}

// Ask handles the ask tool
func (h *Handlers) Ask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	answer, err := h.engine.Answer(ctx, question)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answer failed: %v", err)), nil
	}

	return mcp.NewToolResultText(answer), nil
}

// LookupFacts handles the lookup_facts tool
func (h *Handlers) LookupFacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids, err := requireStringArray(request, "ids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	facts, err := h.store.Retrieve(ctx, ids)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}

	data, err := json.MarshalIndent(facts, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

// ForgetFacts handles the forget_facts tool
func (h *Handlers) ForgetFacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids, err := requireStringArray(request, "ids")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := h.store.Delete(ctx, ids); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("delete failed: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Deleted %d fact(s)", len(ids))), nil
}

// requireStringArray extracts a non-empty string array argument
func requireStringArray(request mcp.CallToolRequest, key string) ([]string, error) {
	values := request.GetStringSlice(key, nil)
	if len(values) == 0 {
		return nil, fmt.Errorf("%s argument is required and must be a non-empty array of strings", key)
	}
	return values, nil
}
