package convocatoria

import (
	"context"
	"time"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// Repository defines the interface for posting persistence
type Repository interface {
	// Create creates a new posting
	Create(ctx context.Context, c *Convocatoria) error

	// Update updates an existing posting
	Update(ctx context.Context, id kernel.ConvocatoriaID, c *Convocatoria) error

	// GetByID retrieves a posting by ID
	GetByID(ctx context.Context, id kernel.ConvocatoriaID) (*Convocatoria, error)

	// Delete deletes a posting by ID
	Delete(ctx context.Context, id kernel.ConvocatoriaID) error

	// List retrieves postings matching the filter with pagination
	List(ctx context.Context, req ListarConvocatoriasRequest) (*kernel.Paginated[Convocatoria], error)

	// ListAbiertas retrieves every open posting, newest first
	ListAbiertas(ctx context.Context) ([]Convocatoria, error)
}

// Cache is the read-through cache for the public posting board. The board
// is the portal's hottest read; entries expire after a short TTL and are
// invalidated explicitly on any posting write.
type Cache interface {
	// GetAbiertas returns the cached open-posting list, or a miss
	GetAbiertas(ctx context.Context) ([]Convocatoria, bool, error)

	// SetAbiertas stores the open-posting list for the given TTL
	SetAbiertas(ctx context.Context, items []Convocatoria, ttl time.Duration) error

	// Invalidate drops the cached list
	Invalidate(ctx context.Context) error
}
