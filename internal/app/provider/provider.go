// Package provider provides verse data sources and their fallback chain.
package provider

import (
	"context"

	"github.com/osa030/tilawah/internal/domain/verse"
)

// Provider is the interface for verse data providers.
type Provider interface {
	// ListChapters retrieves all chapters in order.
	ListChapters(ctx context.Context) ([]verse.ChapterInfo, error)

	// GetChapter retrieves a chapter with its verses.
	GetChapter(ctx context.Context, number int) (*verse.Chapter, error)

	// Name returns the provider type (used in config).
	Name() string
}
