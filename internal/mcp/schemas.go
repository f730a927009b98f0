package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// getSurveyTool returns the tool definition for get_survey
func getSurveyTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_survey",
		Description: "Retrieve the onboarding survey questions in display order",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// runPlacementTool returns the tool definition for run_placement
func runPlacementTool() mcp.Tool {
	return mcp.Tool{
		Name:        "run_placement",
		Description: "Analyze survey answers and place a user on a learning path",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "Identifier of the user being placed",
				},
				"answers": map[string]interface{}{
					"type":        "object",
					"description": "Survey answers keyed by question id; values are a string or an array of strings",
				},
			},
			Required: []string{"user_id", "answers"},
		},
	}
}

// buildProfileTool returns the tool definition for build_profile
func buildProfileTool() mcp.Tool {
	return mcp.Tool{
		Name:        "build_profile",
		Description: "Build a personalization profile from survey answers",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "Identifier of the user the profile belongs to",
				},
				"answers": map[string]interface{}{
					"type":        "object",
					"description": "Survey answers keyed by question id; values are a string or an array of strings",
				},
			},
			Required: []string{"user_id", "answers"},
		},
	}
}

// updateProfileTool returns the tool definition for update_profile
func updateProfileTool() mcp.Tool {
	return mcp.Tool{
		Name:        "update_profile",
		Description: "Apply an incremental update to a stored personalization profile",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "Identifier of the user whose profile is updated",
				},
				"add_favorite_spirit": map[string]interface{}{
					"type":        "string",
					"description": "Spirit to add to the favorites list",
				},
				"remove_favorite_spirit": map[string]interface{}{
					"type":        "string",
					"description": "Spirit to remove from the favorites list",
				},
				"reinforce_flavor": map[string]interface{}{
					"type":        "string",
					"description": "Flavor whose preference score is nudged upward",
				},
				"add_experience": map[string]interface{}{
					"type":        "integer",
					"description": "Experience points to add",
				},
				"session_minutes": map[string]interface{}{
					"type":        "integer",
					"description": "Preferred session length in minutes (3, 5, or 8)",
					"enum":        []int{3, 5, 8},
				},
			},
			Required: []string{"user_id"},
		},
	}
}

// getRecommendationsTool returns the tool definition for get_recommendations
func getRecommendationsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_recommendations",
		Description: "Generate personalized cocktail, brand, lesson, and mood recommendations",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "Identifier of the user to recommend for",
				},
			},
			Required: []string{"user_id"},
		},
	}
}

// searchCatalogTool returns the tool definition for search_catalog
func searchCatalogTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_catalog",
		Description: "Search the content catalog with keyword queries, filters, and sorting",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query; empty with no filters returns the most popular items",
					"default":     "",
				},
				"filters": map[string]interface{}{
					"type":        "object",
					"description": "Optional filters to narrow the result set",
					"properties": map[string]interface{}{
						"categories": map[string]interface{}{
							"type":        "array",
							"description": "Filter by item category",
							"items": map[string]interface{}{
								"type": "string",
								"enum": []string{"recipe", "spirit", "event", "user", "bar", "game"},
							},
						},
						"difficulties": map[string]interface{}{
							"type":        "array",
							"description": "Filter by recipe difficulty",
							"items": map[string]interface{}{
								"type": "string",
								"enum": []string{"beginner", "intermediate", "advanced"},
							},
						},
						"abv_min": map[string]interface{}{
							"type":        "number",
							"description": "Minimum ABV percentage",
						},
						"abv_max": map[string]interface{}{
							"type":        "number",
							"description": "Maximum ABV percentage",
						},
						"time_min": map[string]interface{}{
							"type":        "integer",
							"description": "Minimum preparation time in minutes",
						},
						"time_max": map[string]interface{}{
							"type":        "integer",
							"description": "Maximum preparation time in minutes",
						},
						"ingredients": map[string]interface{}{
							"type":        "array",
							"description": "Ingredients the recipe must include",
							"items":       map[string]interface{}{"type": "string"},
						},
						"equipment": map[string]interface{}{
							"type":        "array",
							"description": "Equipment the recipe must use",
							"items":       map[string]interface{}{"type": "string"},
						},
						"tags": map[string]interface{}{
							"type":        "array",
							"description": "Tags the item must carry",
							"items":       map[string]interface{}{"type": "string"},
						},
						"favorites_only": map[string]interface{}{
							"type":        "boolean",
							"description": "Restrict to items marked as favorites",
						},
						"completed_only": map[string]interface{}{
							"type":        "boolean",
							"description": "Restrict to completed items",
						},
						"sort_by": map[string]interface{}{
							"type":        "string",
							"description": "Sort key for results",
							"enum":        []string{"relevance", "popularity", "recent", "difficulty", "time", "abv"},
						},
						"sort_order": map[string]interface{}{
							"type":        "string",
							"description": "Sort direction; defaults per sort key",
							"enum":        []string{"asc", "desc"},
						},
					},
				},
			},
		},
	}
}

// suggestQueriesTool returns the tool definition for suggest_queries
func suggestQueriesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "suggest_queries",
		Description: "Suggest search queries from history matching a prefix",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"prefix": map[string]interface{}{
					"type":        "string",
					"description": "Prefix the suggested queries must start with",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of suggestions to return (1-20)",
					"default":     5,
					"minimum":     1,
					"maximum":     20,
				},
			},
			Required: []string{"prefix"},
		},
	}
}

// upsertItemTool returns the tool definition for upsert_item
func upsertItemTool() mcp.Tool {
	return mcp.Tool{
		Name:        "upsert_item",
		Description: "Insert or replace a catalog item in the search index",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"item": map[string]interface{}{
					"type":        "object",
					"description": "Full searchable item document, including its category payload",
				},
			},
			Required: []string{"item"},
		},
	}
}

// removeItemTool returns the tool definition for remove_item
func removeItemTool() mcp.Tool {
	return mcp.Tool{
		Name:        "remove_item",
		Description: "Remove a catalog item from the search index",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Identifier of the item to remove",
				},
			},
			Required: []string{"id"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Query engine statistics: catalog size, stored profiles, and search history",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
