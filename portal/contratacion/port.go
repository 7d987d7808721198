package contratacion

import (
	"context"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// Repository defines the interface for contract persistence
type Repository interface {
	// Create creates a new contract
	Create(ctx context.Context, c *Contratacion) error

	// Update updates an existing contract
	Update(ctx context.Context, id kernel.ContratacionID, c *Contratacion) error

	// GetByID retrieves a contract by ID
	GetByID(ctx context.Context, id kernel.ContratacionID) (*Contratacion, error)

	// List retrieves contracts matching the filter with pagination
	List(ctx context.Context, req ListarContratacionesRequest) (*kernel.Paginated[Contratacion], error)

	// ListByAspirante retrieves all contracts of one applicant
	ListByAspirante(ctx context.Context, aspiranteID kernel.AspiranteID) ([]Contratacion, error)
}
