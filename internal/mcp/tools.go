package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mixmentor/mixmentor/internal/placement"
	"github.com/mixmentor/mixmentor/internal/profile"
	"github.com/mixmentor/mixmentor/internal/recommend"
	"github.com/mixmentor/mixmentor/internal/storage"
	"github.com/mixmentor/mixmentor/internal/survey"
	"github.com/mixmentor/mixmentor/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams   = -32602 // Invalid method parameters
	ErrorCodeInternalError   = -32603 // Internal JSON-RPC error
	ErrorCodeProfileNotFound = -32001 // No profile stored for the user
	ErrorCodeItemNotFound    = -32002 // Catalog item does not exist
	ErrorCodeInvalidItem     = -32003 // Catalog item failed validation
)

// handleGetSurvey handles the get_survey tool invocation
func (s *Server) handleGetSurvey(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response := map[string]interface{}{
		"questions": survey.Questions(),
		"count":     len(survey.Questions()),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleRunPlacement handles the run_placement tool invocation
func (s *Server) handleRunPlacement(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return nil, missingParam("user_id")
	}

	var answers types.SurveyAnswers
	if err := decodeParam(args, "answers", &answers); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid answers", map[string]interface{}{
			"param":  "answers",
			"reason": err.Error(),
		})
	}

	result := placement.PlaceUser(answers)
	if err := s.store.SavePlacement(ctx, userID, &result); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to persist placement", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.log.Info().
		Str("user", userID).
		Str("level", string(result.Level)).
		Int("score", result.Score).
		Msg("placement computed")

	return mcp.NewToolResultText(formatAny(result)), nil
}

// handleBuildProfile handles the build_profile tool invocation
func (s *Server) handleBuildProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return nil, missingParam("user_id")
	}

	var answers types.SurveyAnswers
	if err := decodeParam(args, "answers", &answers); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid answers", map[string]interface{}{
			"param":  "answers",
			"reason": err.Error(),
		})
	}

	p := profile.BuildProfile(answers)
	if err := s.store.SaveProfile(ctx, userID, &p); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to persist profile", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.log.Info().
		Str("user", userID).
		Str("skill", string(p.SkillLevel)).
		Str("lesson_track", string(p.LessonTrack)).
		Msg("profile built")

	return mcp.NewToolResultText(formatAny(p)), nil
}

// handleUpdateProfile handles the update_profile tool invocation
func (s *Server) handleUpdateProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return nil, missingParam("user_id")
	}

	update := types.ProfileUpdate{
		AddFavoriteSpirit:    getStringDefault(args, "add_favorite_spirit", ""),
		RemoveFavoriteSpirit: getStringDefault(args, "remove_favorite_spirit", ""),
		ReinforceFlavor:      getStringDefault(args, "reinforce_flavor", ""),
		AddExperience:        getIntDefault(args, "add_experience", 0),
		SessionMinutes:       getIntDefault(args, "session_minutes", 0),
	}

	stored, err := s.store.GetProfile(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newMCPError(ErrorCodeProfileNotFound, "no profile stored for user", map[string]interface{}{
			"user_id": userID,
		})
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to load profile", map[string]interface{}{
			"error": err.Error(),
		})
	}

	updated := profile.ApplyUpdate(*stored, update)
	if err := s.store.SaveProfile(ctx, userID, &updated); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to persist profile", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return mcp.NewToolResultText(formatAny(updated)), nil
}

// handleGetRecommendations handles the get_recommendations tool invocation
func (s *Server) handleGetRecommendations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	userID, ok := args["user_id"].(string)
	if !ok || userID == "" {
		return nil, missingParam("user_id")
	}

	stored, err := s.store.GetProfile(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, newMCPError(ErrorCodeProfileNotFound, "no profile stored for user", map[string]interface{}{
			"user_id": userID,
			"message": "Build a profile with the build_profile tool first.",
		})
	}
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to load profile", map[string]interface{}{
			"error": err.Error(),
		})
	}

	set := recommend.Generate(*stored, s.index.Items())

	s.log.Debug().
		Str("user", userID).
		Int("featured", len(set.FeaturedCocktails)).
		Int("brands", len(set.BrandPicks)).
		Msg("recommendations generated")

	return mcp.NewToolResultText(formatAny(set)), nil
}

// handleSearchCatalog handles the search_catalog tool invocation
func (s *Server) handleSearchCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		args = map[string]interface{}{}
	}

	query := getStringDefault(args, "query", "")

	var filters *types.FilterSpec
	if _, present := args["filters"]; present {
		filters = &types.FilterSpec{}
		if err := decodeParam(args, "filters", filters); err != nil {
			return nil, newMCPError(ErrorCodeInvalidParams, "invalid filters", map[string]interface{}{
				"param":  "filters",
				"reason": err.Error(),
			})
		}
	}

	results := s.index.Search(query, filters)

	// Searches feed the history tracker; keep the stored snapshot current.
	if query != "" {
		s.persistHistory(ctx)
	}

	response := map[string]interface{}{
		"query":   query,
		"count":   len(results),
		"results": results,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleSuggestQueries handles the suggest_queries tool invocation
func (s *Server) handleSuggestQueries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	prefix, ok := args["prefix"].(string)
	if !ok {
		return nil, missingParam("prefix")
	}

	limit := getIntDefault(args, "limit", 5)
	if limit < 1 || limit > 20 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 20", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	response := map[string]interface{}{
		"prefix":      prefix,
		"suggestions": s.index.Suggestions(prefix, limit),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleUpsertItem handles the upsert_item tool invocation
func (s *Server) handleUpsertItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	var item types.SearchableItem
	if err := decodeParam(args, "item", &item); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid item", map[string]interface{}{
			"param":  "item",
			"reason": err.Error(),
		})
	}

	_, existed := s.index.Get(item.ID)
	if existed {
		if !s.index.UpdateItem(item) {
			data := map[string]interface{}{"id": item.ID}
			if verr := item.Validate(); verr != nil {
				data["reason"] = verr.Error()
			}
			return nil, newMCPError(ErrorCodeInvalidItem, "item failed validation", data)
		}
	} else if err := s.index.AddItem(item); err != nil {
		return nil, newMCPError(ErrorCodeInvalidItem, "item failed validation", map[string]interface{}{
			"id":     item.ID,
			"reason": err.Error(),
		})
	}

	// Persist the indexed copy so the stored timestamp matches.
	stored, _ := s.index.Get(item.ID)
	if err := s.store.UpsertItem(ctx, stored); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to persist item", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"id":      item.ID,
		"created": !existed,
		"updated": existed,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleRemoveItem handles the remove_item tool invocation
func (s *Server) handleRemoveItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	id, ok := args["id"].(string)
	if !ok || id == "" {
		return nil, missingParam("id")
	}

	removed := s.index.RemoveItem(id)
	if !removed {
		return nil, newMCPError(ErrorCodeItemNotFound, "item not found", map[string]interface{}{
			"id": id,
		})
	}

	if _, err := s.store.DeleteItem(ctx, id); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to delete item", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"id":      id,
		"removed": true,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to read storage stats", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"server": map[string]interface{}{
			"name":       ServerName,
			"version":    ServerVersion,
			"build_mode": storage.BuildMode,
		},
		"index": map[string]interface{}{
			"items": s.index.Len(),
		},
		"storage": map[string]interface{}{
			"profiles":      stats.Profiles,
			"placements":    stats.Placements,
			"catalog_items": stats.CatalogItems,
		},
		"history": map[string]interface{}{
			"entries":  s.tracker.Len(),
			"trending": s.tracker.Trending(5),
		},
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

func missingParam(name string) error {
	return newMCPError(ErrorCodeInvalidParams, name+" parameter is required", map[string]interface{}{
		"param":  name,
		"reason": "missing or empty",
	})
}

// decodeParam re-marshals a raw argument and decodes it into dst, giving
// structured parameters their full JSON semantics.
func decodeParam(args map[string]interface{}, key string, dst interface{}) error {
	raw, ok := args[key]
	if !ok {
		return fmt.Errorf("%s is required", key)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// formatAny formats any value as indented JSON
func formatAny(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
