package aspirante

import (
	"context"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

type Repository interface {
	// Create creates a new applicant account
	Create(ctx context.Context, a *Aspirante) error

	// Update updates an existing applicant
	Update(ctx context.Context, id kernel.AspiranteID, a *Aspirante) error

	// GetByID retrieves an applicant by ID
	GetByID(ctx context.Context, id kernel.AspiranteID) (*Aspirante, error)

	// GetByEmail retrieves an applicant by email
	GetByEmail(ctx context.Context, email kernel.Email) (*Aspirante, error)

	// GetByIdentificacion retrieves an applicant by identity document
	GetByIdentificacion(ctx context.Context, identificacion kernel.Identificacion) (*Aspirante, error)

	// Delete deletes an applicant by ID
	Delete(ctx context.Context, id kernel.AspiranteID) error

	// List retrieves all applicants with pagination
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Aspirante], error)

	// Search searches applicants by various criteria
	Search(ctx context.Context, req BuscarAspirantesRequest) (*kernel.Paginated[Aspirante], error)

	// Exists checks if an applicant exists by ID
	Exists(ctx context.Context, id kernel.AspiranteID) (bool, error)
}
