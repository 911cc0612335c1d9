package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"plovermd/internal/application/commands"
	"plovermd/internal/ports"
)

// RegisterWriteTools adds all dictionary write tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.DictionaryRepository) {
	s.AddTool(addTool(), addHandler(repo))
	s.AddTool(deleteTool(), deleteHandler(repo))
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Add or change a translation. Changed lines are marked (UPDATED) in place; new outlines go to the \"Added by Plover\" section."),
		mcp.WithString("strokes",
			mcp.Description("Outline with strokes separated by / or spaces (e.g. HEL/HRO)"),
			mcp.Required(),
		),
		mcp.WithString("translation",
			mcp.Description("Translation text, in Plover's format (e.g. {^ing})"),
			mcp.Required(),
		),
	)
}

func addHandler(repo ports.DictionaryRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddCommand(repo,
			req.GetString("strokes", ""),
			req.GetString("translation", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a translation. Lines carrying it stay in the file, marked (DELETED)."),
		mcp.WithString("strokes",
			mcp.Description("Outline to delete"),
			mcp.Required(),
		),
	)
}

func deleteHandler(repo ports.DictionaryRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteCommand(repo, req.GetString("strokes", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
