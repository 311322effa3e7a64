// Package resources implements MCP resource handlers for FacilitatorStyles.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (facili://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/facilistyles/internal/catalog"
	"github.com/HendryAvila/facilistyles/internal/quiz"
)

const (
	StatusURI = "facili://session/status"
	TypesURI  = "facili://types"
)

// StatusSource yields the current session snapshot.
type StatusSource interface {
	Status() quiz.Status
}

// Handler manages FacilitatorStyles resource endpoints.
type Handler struct {
	status  StatusSource
	catalog *catalog.Catalog
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(status StatusSource, cat *catalog.Catalog) *Handler {
	return &Handler{status: status, catalog: cat}
}

// StatusResource returns the MCP resource definition for the session status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		StatusURI,
		"Quiz Session Status",
		mcp.WithResourceDescription("Current quiz step, question, progress and result"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStatus returns the current session status as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, h.status.Status())
}

// TypesResource returns the MCP resource definition for the type catalog.
func (h *Handler) TypesResource() mcp.Resource {
	return mcp.NewResource(
		TypesURI,
		"Facilitator Types",
		mcp.WithResourceDescription("All sixteen facilitator types with their families and tendency profiles"),
		mcp.WithMIMEType("application/json"),
	)
}

type familyView struct {
	catalog.Family
	Types []*quiz.FacilitatorType `json:"types"`
}

// HandleTypes returns the catalog grouped by family as JSON.
func (h *Handler) HandleTypes(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	families := h.catalog.Families()
	views := make([]familyView, 0, len(families))
	for _, f := range families {
		views = append(views, familyView{Family: f, Types: h.catalog.Group(f)})
	}
	return jsonResource(req.Params.URI, map[string]any{"families": views})
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
