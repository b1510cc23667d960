package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jobmate/board-service/internal/jobs"
	"jobmate/board-service/internal/matching"
	"jobmate/board-service/internal/model"
)

type tools struct {
	svc *jobs.Service
}

func (t *tools) register(s *server.MCPServer) {
	filterTool := mcp.NewTool("filter_jobs",
		mcp.WithDescription("Search the local job board. Empty selectors match every job."),
	)
	filterTool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"search":       map[string]interface{}{"type": "string", "description": "Text matched against title, company and description"},
			"location":     map[string]interface{}{"type": "string", "description": "Substring of the job location"},
			"category":     map[string]interface{}{"type": "string", "description": "Category, e.g. Technology (default: All Categories)"},
			"type":         map[string]interface{}{"type": "string", "description": "full-time, part-time, contract or remote (default: All Types)"},
			"remote":       map[string]interface{}{"type": "boolean", "description": "If true, only remote jobs"},
			"sort":         map[string]interface{}{"type": "string", "description": "match, date or distance (default: posting order)"},
			"max_distance": map[string]interface{}{"type": "number", "description": "Maximum distance in miles"},
			"limit":        map[string]interface{}{"type": "integer", "description": "Max jobs returned (default: 20)"},
		},
	}
	s.AddTool(filterTool, t.filterJobs)

	applyTool := mcp.NewTool("should_i_apply",
		mcp.WithDescription("Score a candidate against a job and advise whether to apply"),
	)
	applyTool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"job_id":     map[string]interface{}{"type": "string", "description": "The job id"},
			"skills":     map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}, "description": "Candidate skills"},
			"experience": map[string]interface{}{"type": "string", "description": "Experience band, e.g. 3-5 years"},
			"location":   map[string]interface{}{"type": "string", "description": "Preferred location"},
			"user_id":    map[string]interface{}{"type": "string", "description": "Use this seeker's saved profile instead of the fields above"},
		},
		Required: []string{"job_id"},
	}
	s.AddTool(applyTool, t.shouldApply)
}

const defaultLimit = 20

func (t *tools) filterJobs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	criteria := model.SearchCriteria{
		Search:   stringArg(args, "search"),
		Location: stringArg(args, "location"),
		Category: stringArg(args, "category"),
		Type:     stringArg(args, "type"),
	}
	if v, ok := args["remote"].(bool); ok {
		criteria.Remote = v
	}
	sortBy, ok := matching.ParseSortBy(stringArg(args, "sort"))
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown sort %q", stringArg(args, "sort"))), nil
	}
	opts := jobs.SearchOptions{SortBy: sortBy}
	if v, ok := args["max_distance"].(float64); ok && v > 0 {
		opts.MaxDistance = v
	}
	limit := defaultLimit
	if v, ok := args["limit"].(float64); ok && v > 0 {
		limit = int(v)
	}

	found, err := t.svc.Search(ctx, criteria, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search jobs: %v", err)), nil
	}
	if len(found) == 0 {
		return mcp.NewToolResultText("No jobs match these filters."), nil
	}
	total := len(found)
	if len(found) > limit {
		found = found[:limit]
	}
	return jsonResult(map[string]any{"total": total, "jobs": found})
}

func (t *tools) shouldApply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	jobID := stringArg(args, "job_id")
	if jobID == "" {
		return mcp.NewToolResultError("missing required field job_id"), nil
	}

	var (
		rec model.Recommendation
		err error
	)
	if userID := stringArg(args, "user_id"); userID != "" {
		rec, err = t.svc.ShouldApplyForUser(ctx, jobID, userID)
	} else {
		rec, err = t.svc.ShouldApply(ctx, jobID, model.CandidateContext{
			Skills:     stringsArg(args, "skills"),
			Experience: stringArg(args, "experience"),
			Location:   stringArg(args, "location"),
		})
	}
	switch {
	case errors.Is(err, jobs.ErrNotFound):
		return mcp.NewToolResultError(fmt.Sprintf("job %q not found", jobID)), nil
	case errors.Is(err, jobs.ErrProfileNotFound):
		return mcp.NewToolResultError("no saved profile for this user"), nil
	case err != nil:
		return mcp.NewToolResultError(fmt.Sprintf("Failed to score job: %v", err)), nil
	}
	return jsonResult(rec)
}

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return strings.TrimSpace(v)
}

func stringsArg(args map[string]interface{}, key string) []string {
	raw, _ := args[key].([]interface{})
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}
