// Package mcp implements the Model Context Protocol (MCP) server for MixMentor.
//
// The MCP server exposes the personalization and search engine as tools:
//   - get_survey: Retrieve the onboarding survey questions
//   - run_placement: Place a user on a learning path from survey answers
//   - build_profile: Build a personalization profile from survey answers
//   - update_profile: Apply incremental updates to a stored profile
//   - get_recommendations: Generate personalized recommendation sets
//   - search_catalog: Search the content catalog with filters and sorting
//   - suggest_queries: Suggest search queries from history
//   - upsert_item: Insert or replace a catalog item
//   - remove_item: Remove a catalog item
//   - get_status: Query engine statistics
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// The server reads requests on stdin and writes responses to stdout, so
// all logging goes to stderr.
//
// # Tool: run_placement
//
// Analyze survey answers and place a user:
//
//	Request:
//	{
//	  "name": "run_placement",
//	  "arguments": {
//	    "user_id": "u-123",
//	    "answers": {
//	      "q2": "very-confident",
//	      "q3": "margarita",
//	      "q5": ["whiskey", "gin"]
//	    }
//	  }
//	}
//
//	Response:
//	{
//	  "level": "intermediate",
//	  "track": "alcoholic",
//	  "spirits": ["whiskey", "gin"],
//	  "start_id": "start-classic-core",
//	  "session_minutes": 5,
//	  "score": 4,
//	  "rationale": "Placed at the intermediate level (4/10): ..."
//	}
//
// # Tool: search_catalog
//
// Search the catalog with optional filters:
//
//	Request:
//	{
//	  "name": "search_catalog",
//	  "arguments": {
//	    "query": "old fashioned",
//	    "filters": {
//	      "categories": ["recipe"],
//	      "abv_max": 30,
//	      "sort_by": "abv",
//	      "sort_order": "asc"
//	    }
//	  }
//	}
//
// An empty query with no filters returns the twenty most popular items.
//
// # State
//
// The server owns the SQLite store, the in-memory search index, and the
// search history tracker. Catalog items and history are loaded from
// storage at startup; mutations write through to storage so a restart
// reproduces the same engine state.
package mcp
