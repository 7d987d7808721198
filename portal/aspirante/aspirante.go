package aspirante

import (
	"fmt"
	"time"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// EstadoAspirante represents the status of an applicant account
type EstadoAspirante string

const (
	EstadoAspiranteActivo    EstadoAspirante = "ACTIVO"    // Active in the portal
	EstadoAspiranteInactivo  EstadoAspirante = "INACTIVO"  // Deactivated
	EstadoAspiranteArchivado EstadoAspirante = "ARCHIVADO" // Archived by HR
)

// Genero opciones del formulario de registro
type Genero string

const (
	GeneroMasculino Genero = "Masculino"
	GeneroFemenino  Genero = "Femenino"
	GeneroOtro      Genero = "Otro"
)

// EstadoCivil opciones del formulario de registro
type EstadoCivil string

const (
	EstadoCivilSoltero    EstadoCivil = "Soltero(a)"
	EstadoCivilCasado     EstadoCivil = "Casado(a)"
	EstadoCivilUnionLibre EstadoCivil = "Unión Libre"
	EstadoCivilDivorciado EstadoCivil = "Divorciado(a)"
	EstadoCivilViudo      EstadoCivil = "Viudo(a)"
)

type Aspirante struct {
	ID               kernel.AspiranteID    `db:"id" json:"id"`
	Email            kernel.Email          `db:"email" json:"email"`
	PasswordHash     string                `db:"password_hash" json:"-"`
	PrimerNombre     string                `db:"primer_nombre" json:"primer_nombre"`
	SegundoNombre    string                `db:"segundo_nombre" json:"segundo_nombre,omitempty"`
	PrimerApellido   string                `db:"primer_apellido" json:"primer_apellido"`
	SegundoApellido  string                `db:"segundo_apellido" json:"segundo_apellido,omitempty"`
	Identificacion   kernel.Identificacion `db:"-" json:"identificacion"`
	FechaNacimiento  time.Time             `db:"fecha_nacimiento" json:"fecha_nacimiento"`
	Genero           Genero                `db:"genero" json:"genero"`
	EstadoCivil      EstadoCivil           `db:"estado_civil" json:"estado_civil"`
	Telefono         kernel.Telefono       `db:"telefono" json:"telefono"`
	PaisID           int                   `db:"pais_id" json:"pais_id"`
	DepartamentoID   int                   `db:"departamento_id" json:"departamento_id"`
	MunicipioID      int                   `db:"municipio_id" json:"municipio_id"`
	Rol              kernel.Rol            `db:"rol" json:"rol"`
	Estado           EstadoAspirante       `db:"estado" json:"estado"`
	ArchivedAt       *time.Time            `db:"archived_at" json:"archived_at,omitempty"`
	CreatedAt        time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time             `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsActive checks if the applicant account is active
func (a *Aspirante) IsActive() bool {
	return a.Estado == EstadoAspiranteActivo
}

// IsArchived checks if the applicant account is archived
func (a *Aspirante) IsArchived() bool {
	return a.Estado == EstadoAspiranteArchivado
}

// GetFullName returns the applicant's full name
func (a *Aspirante) GetFullName() string {
	nombre := a.PrimerNombre
	if a.SegundoNombre != "" {
		nombre += " " + a.SegundoNombre
	}
	apellido := a.PrimerApellido
	if a.SegundoApellido != "" {
		apellido += " " + a.SegundoApellido
	}
	return fmt.Sprintf("%s %s", nombre, apellido)
}

// Archive marks the applicant as archived
func (a *Aspirante) Archive() error {
	if a.IsArchived() {
		return ErrAspiranteYaArchivado()
	}

	now := time.Now()
	a.Estado = EstadoAspiranteArchivado
	a.ArchivedAt = &now
	a.UpdatedAt = now
	return nil
}

// Unarchive removes archived status
func (a *Aspirante) Unarchive() error {
	if !a.IsArchived() {
		return ErrAspiranteNoArchivado()
	}

	a.Estado = EstadoAspiranteActivo
	a.ArchivedAt = nil
	a.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the applicant as inactive
func (a *Aspirante) Deactivate() {
	a.Estado = EstadoAspiranteInactivo
	a.UpdatedAt = time.Now()
}

// Activate marks the applicant as active
func (a *Aspirante) Activate() {
	a.Estado = EstadoAspiranteActivo
	a.UpdatedAt = time.Now()
}

// UpdateContactInfo updates the applicant's contact information
func (a *Aspirante) UpdateContactInfo(email kernel.Email, telefono kernel.Telefono) {
	if email != "" {
		a.Email = email
	}
	if telefono != "" {
		a.Telefono = telefono
	}
	a.UpdatedAt = time.Now()
}

// CanSubmitRecords checks if the applicant may add expediente records
func (a *Aspirante) CanSubmitRecords() bool {
	return a.IsActive() && !a.IsArchived()
}
