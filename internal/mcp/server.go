package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/mixmentor/mixmentor/internal/history"
	"github.com/mixmentor/mixmentor/internal/index"
	"github.com/mixmentor/mixmentor/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "mixmentor-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultDBPath is the default location for the database
	DefaultDBPath = "~/.mixmentor"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp     *server.MCPServer
	store   storage.Store
	index   *index.Index
	tracker *history.Tracker
	log     zerolog.Logger
}

// NewServer creates a new MCP server instance backed by the database at
// dbPath, warming the in-memory index and search history from storage.
func NewServer(dbPath string, logger zerolog.Logger) (*Server, error) {
	// Expand home directory if needed
	if dbPath == "" || dbPath == DefaultDBPath {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".mixmentor")
	}
	dbFile := filepath.Join(dbPath, "mixmentor.db")

	ctx := context.Background()

	store, err := storage.Open(ctx, dbFile)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	state, err := storage.Bootstrap(ctx, store)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to load stored state: %w", err)
	}

	tracker := history.NewTracker()
	if state.History != nil {
		if err := tracker.Restore(state.History); err != nil {
			// A corrupt snapshot loses history, not the catalog.
			logger.Warn().Err(err).Msg("discarding unreadable search history snapshot")
		}
	}

	idx := index.New(state.Items, tracker)

	logger.Info().
		Int("catalog_items", idx.Len()).
		Int("history_entries", tracker.Len()).
		Str("db", dbFile).
		Msg("engine state loaded")

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:     mcpServer,
		store:   store,
		index:   idx,
		tracker: tracker,
		log:     logger,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() {
		s.persistHistory(context.Background())
		_ = s.store.Close()
	}()
	return server.ServeStdio(s.mcp)
}

// persistHistory writes the current search history snapshot to storage.
func (s *Server) persistHistory(ctx context.Context) {
	data, err := s.tracker.Snapshot()
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to snapshot search history")
		return
	}
	if err := s.store.SaveSnapshot(ctx, storage.HistorySnapshotName, data); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist search history")
	}
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(getSurveyTool(), s.handleGetSurvey)
	s.mcp.AddTool(runPlacementTool(), s.handleRunPlacement)
	s.mcp.AddTool(buildProfileTool(), s.handleBuildProfile)
	s.mcp.AddTool(updateProfileTool(), s.handleUpdateProfile)
	s.mcp.AddTool(getRecommendationsTool(), s.handleGetRecommendations)
	s.mcp.AddTool(searchCatalogTool(), s.handleSearchCatalog)
	s.mcp.AddTool(suggestQueriesTool(), s.handleSuggestQueries)
	s.mcp.AddTool(upsertItemTool(), s.handleUpsertItem)
	s.mcp.AddTool(removeItemTool(), s.handleRemoveItem)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
}
