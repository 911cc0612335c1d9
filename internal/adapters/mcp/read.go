package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"plovermd/internal/application"
	"plovermd/internal/application/commands"
	"plovermd/internal/ports"
)

// RegisterReadTools adds all read-only dictionary tools to the MCP server.
// index may be nil, in which case reverse_lookup reports that it is disabled.
func RegisterReadTools(s *server.MCPServer, repo ports.DictionaryRepository, index ports.TranslationIndex) {
	s.AddTool(lookupTool(), lookupHandler(repo, index))
	s.AddTool(listTool(), listHandler(repo))
	s.AddTool(searchTool(), searchHandler(repo))
	s.AddTool(reverseLookupTool(), reverseLookupHandler(repo, index))
	s.AddTool(pathTool(), pathHandler(repo))
}

// --- lookup ---

func lookupTool() mcp.Tool {
	return mcp.NewTool("lookup",
		mcp.WithDescription("Look up the translation of a steno outline."),
		mcp.WithString("strokes",
			mcp.Description("Outline with strokes separated by / or spaces (e.g. HEL/HRO)"),
			mcp.Required(),
		),
	)
}

func lookupHandler(repo ports.DictionaryRepository, index ports.TranslationIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewLookupCommand(repo, index, req.GetString("strokes", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatEntry(result.Key, result.Translation)), nil
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List the translations of the dictionary in file order, one outline per line."),
		mcp.WithString("filter",
			mcp.Description("Only list outlines or translations containing this text (case-insensitive)"),
		),
	)
}

func listHandler(repo ports.DictionaryRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := commands.NewListCommand(repo, req.GetString("filter", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntries(entries, func(e application.Entry) string {
			return formatEntry(e.Key, e.Translation)
		})
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search outlines and translations. Best matches first."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 20)"),
		),
	)
}

func searchHandler(repo ports.DictionaryRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(repo, query, req.GetInt("limit", 20)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}
		return formatEntries(results, func(r commands.SearchResult) string {
			return formatEntry(r.Key, r.Translation)
		})
	}
}

// --- reverse_lookup ---

func reverseLookupTool() mcp.Tool {
	return mcp.NewTool("reverse_lookup",
		mcp.WithDescription("Find every outline that writes a translation. Shortest outlines first."),
		mcp.WithString("translation",
			mcp.Description("Exact translation text"),
			mcp.Required(),
		),
	)
}

func reverseLookupHandler(repo ports.DictionaryRepository, index ports.TranslationIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewReverseLookupCommand(repo, index, req.GetString("translation", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntries(result.Entries, func(e application.IndexEntry) string {
			return e.Key.String()
		})
	}
}

// --- path ---

func pathTool() mcp.Tool {
	return mcp.NewTool("path",
		mcp.WithDescription("Get the filesystem path of the markdown dictionary."),
	)
}

func pathHandler(repo ports.DictionaryRepository) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(repo.Path()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntries[T any](entries []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entries) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// formatEntry renders one translation, quoting it so blanks and newlines stay visible
func formatEntry(key application.Key, translation string) string {
	return fmt.Sprintf("%s  %q", key, translation)
}
