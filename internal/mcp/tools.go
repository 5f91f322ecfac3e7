package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/shivavenkatesh/threadsplit/internal/thread"
	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

// splitThreadTool returns the tool definition for split_thread
func splitThreadTool() mcp.Tool {
	return mcp.Tool{
		Name:        "split_thread",
		Description: "Split long text into numbered segments of at most 280 characters for posting as a thread",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Text to split",
				},
				"separator": map[string]interface{}{
					"type":        "string",
					"description": "If set, also return the thread joined with this separator",
				},
			},
			Required: []string{"text"},
		},
	}
}

// validateThreadTool returns the tool definition for validate_thread
func validateThreadTool() mcp.Tool {
	return mcp.Tool{
		Name:        "validate_thread",
		Description: "Check a thread for problems that would block posting (length, count, empty segments)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"tweets": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Thread segments in posting order",
				},
			},
			Required: []string{"tweets"},
		},
	}
}

// handleSplitThread handles the split_thread tool invocation
func (s *Server) handleSplitThread(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments"), nil
	}

	text, _ := args["text"].(string)
	resp, err := s.svc.Split(ctx, types.SplitRequest{Text: text})
	if errors.Is(err, thread.ErrEmptyText) {
		return mcp.NewToolResultError("text parameter is required"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("split failed: %w", err)
	}

	out := map[string]interface{}{
		"tweets":   resp.Tweets,
		"warnings": nonNil(resp.Warnings),
		"stats":    resp.Stats,
	}
	if sep, ok := args["separator"].(string); ok && sep != "" {
		out["export"] = s.svc.Export(types.ExportRequest{Tweets: resp.Tweets, Separator: sep})
	}

	return mcp.NewToolResultText(formatJSON(out)), nil
}

// handleValidateThread handles the validate_thread tool invocation
func (s *Server) handleValidateThread(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments"), nil
	}

	raw, ok := args["tweets"].([]interface{})
	if !ok {
		return mcp.NewToolResultError("tweets parameter must be an array of strings"), nil
	}

	tweets := make([]string, 0, len(raw))
	for i, v := range raw {
		str, ok := v.(string)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("tweets[%d] is not a string", i)), nil
		}
		tweets = append(tweets, str)
	}

	return mcp.NewToolResultText(formatJSON(s.svc.Validate(tweets))), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// formatJSON renders v as indented JSON
func formatJSON(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(b)
}
