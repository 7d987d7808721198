package expediente

import (
	"context"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// Repository defines the interface for record persistence
type Repository interface {
	// Create creates a new record
	Create(ctx context.Context, r *Registro) error

	// Update updates an existing record
	Update(ctx context.Context, id kernel.ExpedienteID, r *Registro) error

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id kernel.ExpedienteID) (*Registro, error)

	// Delete deletes a record by ID
	Delete(ctx context.Context, id kernel.ExpedienteID) error

	// ListByAspirante retrieves all records of one applicant
	ListByAspirante(ctx context.Context, aspiranteID kernel.AspiranteID) ([]Registro, error)

	// List retrieves records matching the filter with pagination
	List(ctx context.Context, req ListarRegistrosRequest) (*kernel.Paginated[Registro], error)

	// CountByAspirante counts an applicant's records grouped by type and review status
	CountByAspirante(ctx context.Context, aspiranteID kernel.AspiranteID) (porTipo map[TipoRegistro]int, porRevision map[EstadoRevision]int, err error)
}
