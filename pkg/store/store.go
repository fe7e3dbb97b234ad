// Package store persists named graph documents for the HTTP server.
//
// This package defines the storage interface plus implementations for
// different backends:
//   - memory: in-memory storage for development and testing
//   - file: file-based storage for single-host deployments
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage when documents should live with other
//     application data
//
// Records hold the raw edge list, not a compiled graph: compilation is cheap
// and the compiled form is derived on demand by whoever reads the record.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/trellisgraph/trellis/pkg/graph"
	"github.com/trellisgraph/trellis/pkg/graphio"
)

// ErrNotFound is returned by [Store.Get] when no record has the given ID.
var ErrNotFound = errors.New("graph not found")

// Record is a stored graph document.
type Record struct {
	ID        string         `json:"id" bson:"_id"`
	Name      string         `json:"name,omitempty" bson:"name,omitempty"`
	Edges     []graphio.Edge `json:"edges" bson:"edges"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

// Graph builds a mutable graph from the record's edges.
func (r *Record) Graph() *graph.DirectedGraph {
	return graphio.Document{Name: r.Name, Edges: r.Edges}.Graph()
}

// NewID returns a fresh record identifier.
func NewID() string { return uuid.NewString() }

// NewRecord creates a record from a decoded document with a fresh ID and
// current timestamps.
func NewRecord(doc graphio.Document) *Record {
	now := time.Now().UTC()
	return &Record{
		ID:        NewID(),
		Name:      doc.Name,
		Edges:     doc.Edges,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store is the interface for graph storage backends.
type Store interface {
	// Get retrieves a record by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Record, error)

	// Put stores a record, replacing any existing record with the same ID.
	Put(ctx context.Context, rec *Record) error

	// Delete removes a record. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored records, in unspecified order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}
