package expediente

import (
	"time"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// TipoRegistro clasifica los registros documentales del expediente
type TipoRegistro string

const (
	TipoEstudio     TipoRegistro = "ESTUDIO"
	TipoExperiencia TipoRegistro = "EXPERIENCIA"
	TipoIdioma      TipoRegistro = "IDIOMA"
	TipoEps         TipoRegistro = "EPS"
	TipoRut         TipoRegistro = "RUT"
)

// IsValid checks if the record type is a known one
func (t TipoRegistro) IsValid() bool {
	switch t {
	case TipoEstudio, TipoExperiencia, TipoIdioma, TipoEps, TipoRut:
		return true
	}
	return false
}

// EstadoRevision represents the HR review status of a record
type EstadoRevision string

const (
	RevisionPendiente EstadoRevision = "PENDIENTE"
	RevisionAprobado  EstadoRevision = "APROBADO"
	RevisionRechazado EstadoRevision = "RECHAZADO"
	RevisionDevuelto  EstadoRevision = "DEVUELTO" // Returned for correction
)

// Registro is one document record of an applicant's file: a flat field
// record plus at most one attachment. Field semantics depend on Tipo;
// the schema for each tipo governs what Campos must contain.
type Registro struct {
	ID            kernel.ExpedienteID `db:"id" json:"id"`
	AspiranteID   kernel.AspiranteID  `db:"aspirante_id" json:"aspirante_id"`
	Tipo          TipoRegistro        `db:"tipo" json:"tipo"`
	Campos        map[string]string   `db:"-" json:"campos"`
	ArchivoURL    kernel.BucketURL    `db:"archivo_url" json:"archivo_url,omitempty"`
	ArchivoNombre string              `db:"archivo_nombre" json:"archivo_nombre,omitempty"`
	Paginas       int                 `db:"paginas" json:"paginas,omitempty"`
	Revision      EstadoRevision      `db:"revision" json:"revision"`
	Observacion   string              `db:"observacion" json:"observacion,omitempty"`
	CreatedAt     time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// TieneArchivo checks if the record carries an uploaded attachment
func (r *Registro) TieneArchivo() bool {
	return r.ArchivoURL != ""
}

// EsEditable indica si el aspirante aún puede modificar el registro.
// Un registro aprobado queda congelado; uno devuelto vuelve a ser editable.
func (r *Registro) EsEditable() bool {
	return r.Revision == RevisionPendiente || r.Revision == RevisionDevuelto
}

// PerteneceA checks record ownership
func (r *Registro) PerteneceA(aspiranteID kernel.AspiranteID) bool {
	return r.AspiranteID == aspiranteID
}

// Aprobar marks the record as approved by HR
func (r *Registro) Aprobar() error {
	if r.Revision == RevisionAprobado {
		return ErrRegistroYaRevisado()
	}

	r.Revision = RevisionAprobado
	r.Observacion = ""
	r.UpdatedAt = time.Now()
	return nil
}

// Rechazar marks the record as rejected with an HR remark
func (r *Registro) Rechazar(observacion string) error {
	if r.Revision == RevisionAprobado {
		return ErrRegistroYaRevisado()
	}

	r.Revision = RevisionRechazado
	r.Observacion = observacion
	r.UpdatedAt = time.Now()
	return nil
}

// Devolver returns the record to the applicant for correction
func (r *Registro) Devolver(observacion string) error {
	if r.Revision == RevisionAprobado {
		return ErrRegistroYaRevisado()
	}

	r.Revision = RevisionDevuelto
	r.Observacion = observacion
	r.UpdatedAt = time.Now()
	return nil
}

// ReabrirRevision puts an edited record back in the review queue
func (r *Registro) ReabrirRevision() {
	r.Revision = RevisionPendiente
	r.Observacion = ""
	r.UpdatedAt = time.Now()
}
