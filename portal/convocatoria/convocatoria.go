package convocatoria

import (
	"time"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// EstadoConvocatoria represents the lifecycle state of a job posting
type EstadoConvocatoria string

const (
	EstadoAbierta    EstadoConvocatoria = "Abierta"
	EstadoCerrada    EstadoConvocatoria = "Cerrada"
	EstadoFinalizada EstadoConvocatoria = "Finalizada"
)

// IsValid checks if the state is a known one
func (e EstadoConvocatoria) IsValid() bool {
	return e == EstadoAbierta || e == EstadoCerrada || e == EstadoFinalizada
}

// TipoConvocatoria clasifica la vinculación ofrecida
type TipoConvocatoria string

const (
	TipoDocentePlanta    TipoConvocatoria = "Docente de Planta"
	TipoDocenteOcasional TipoConvocatoria = "Docente Ocasional"
	TipoHoraCatedra      TipoConvocatoria = "Hora Cátedra"
)

// Convocatoria is a job posting applicants postulate against
type Convocatoria struct {
	ID               kernel.ConvocatoriaID `db:"id" json:"id"`
	Nombre           string                `db:"nombre" json:"nombre"`
	Estado           EstadoConvocatoria    `db:"estado" json:"estado"`
	Tipo             TipoConvocatoria      `db:"tipo" json:"tipo"`
	FechaPublicacion time.Time             `db:"fecha_publicacion" json:"fecha_publicacion"`
	FechaCierre      time.Time             `db:"fecha_cierre" json:"fecha_cierre"`
	Descripcion      string                `db:"descripcion" json:"descripcion"`
	ArchivoURL       kernel.BucketURL      `db:"archivo_url" json:"archivo_url,omitempty"`
	CreatedBy        kernel.UserID         `db:"created_by" json:"created_by"`
	CreatedAt        time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time             `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// EstaAbierta checks if the posting accepts postulations
func (c *Convocatoria) EstaAbierta() bool {
	return c.Estado == EstadoAbierta
}

// AdmitePostulaciones verifica estado y ventana de fechas a la vez. Una
// convocatoria abierta con fecha de cierre vencida ya no admite envíos.
func (c *Convocatoria) AdmitePostulaciones(ahora time.Time) bool {
	return c.EstaAbierta() && !ahora.After(c.FechaCierre)
}

// Cerrar closes the posting to new postulations
func (c *Convocatoria) Cerrar() error {
	if c.Estado != EstadoAbierta {
		return ErrTransicionInvalida().
			WithDetail("estado", c.Estado).
			WithDetail("destino", EstadoCerrada)
	}

	c.Estado = EstadoCerrada
	c.UpdatedAt = time.Now()
	return nil
}

// Reabrir reopens a closed posting
func (c *Convocatoria) Reabrir() error {
	if c.Estado != EstadoCerrada {
		return ErrTransicionInvalida().
			WithDetail("estado", c.Estado).
			WithDetail("destino", EstadoAbierta)
	}

	c.Estado = EstadoAbierta
	c.UpdatedAt = time.Now()
	return nil
}

// Finalizar ends the posting's selection process. Terminal state.
func (c *Convocatoria) Finalizar() error {
	if c.Estado == EstadoFinalizada {
		return ErrTransicionInvalida().
			WithDetail("estado", c.Estado).
			WithDetail("destino", EstadoFinalizada)
	}

	c.Estado = EstadoFinalizada
	c.UpdatedAt = time.Now()
	return nil
}

// EsEditable indica si HR aún puede modificar la convocatoria
func (c *Convocatoria) EsEditable() bool {
	return c.Estado != EstadoFinalizada
}
