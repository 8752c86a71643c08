// ABOUTME: MCP tool definitions and registration for the recall server
// ABOUTME: Defines JSON schemas for the ingest, ask, lookup, and forget tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/recall/internal/rag"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, engine *rag.Engine, store rag.FactStore) *Handlers {
	handlers := &Handlers{
		engine: engine,
		store:  store,
	}

	// 1. ingest_fact - Store a text fact as a vector point
	server.AddTool(mcp.Tool{
		Name:        "ingest_fact",
		Description: "Store a short text fact in the recall vector store. Re-ingesting the same id replaces the fact.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Fact text to store",
				},
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Optional fact id; a UUID is generated when omitted",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.IngestFact)

	// 2. ask - Answer a question grounded in stored facts
	server.AddTool(mcp.Tool{
		Name:        "ask",
		Description: "Answer a question using only the stored facts most relevant to it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.Ask)

	// 3. lookup_facts - Read stored facts back by id
	server.AddTool(mcp.Tool{
		Name:        "lookup_facts",
		Description: "Retrieve stored facts by id. Ids that do not exist are omitted from the result.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Fact ids to retrieve",
				},
			},
			Required: []string{"ids"},
		},
	}, handlers.LookupFacts)

	// 4. forget_facts - Delete stored facts by id
	server.AddTool(mcp.Tool{
		Name:        "forget_facts",
		Description: "Delete stored facts by id. Deleting an id that does not exist is a no-op.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Fact ids to delete",
				},
			},
			Required: []string{"ids"},
		},
	}, handlers.ForgetFacts)

	return handlers
}
