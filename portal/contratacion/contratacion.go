package contratacion

import (
	"time"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// TipoContrato clasifica la vinculación contractual
type TipoContrato string

const (
	TipoPrestacionServicios TipoContrato = "Prestación de Servicios"
	TipoTerminoFijo         TipoContrato = "Término Fijo"
	TipoTerminoIndefinido   TipoContrato = "Término Indefinido"
)

// Area es la dependencia que suscribe el contrato
type Area string

const (
	AreaDocencia       Area = "Docencia"
	AreaInvestigacion  Area = "Investigación"
	AreaExtension      Area = "Extensión"
	AreaAdministrativa Area = "Administrativa"
	AreaBienestar      Area = "Bienestar"
)

// EstadoContratacion represents the lifecycle state of a contract
type EstadoContratacion string

const (
	EstadoVigente   EstadoContratacion = "VIGENTE"
	EstadoTerminada EstadoContratacion = "TERMINADA"
	EstadoAnulada   EstadoContratacion = "ANULADA"
)

// Contratacion is a contract issued by HR for a selected applicant
type Contratacion struct {
	ID            kernel.ContratacionID `db:"id" json:"id"`
	AspiranteID   kernel.AspiranteID    `db:"aspirante_id" json:"aspirante_id"`
	TipoContrato  TipoContrato          `db:"tipo_contrato" json:"tipo_contrato"`
	Area          Area                  `db:"area" json:"area"`
	FechaInicio   time.Time             `db:"fecha_inicio" json:"fecha_inicio"`
	FechaFin      time.Time             `db:"fecha_fin" json:"fecha_fin"`
	ValorContrato int64                 `db:"valor_contrato" json:"valor_contrato"`
	Observaciones string                `db:"observaciones" json:"observaciones,omitempty"`
	Estado        EstadoContratacion    `db:"estado" json:"estado"`
	CreatedBy     kernel.UserID         `db:"created_by" json:"created_by"`
	CreatedAt     time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time             `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// EstaVigente checks if the contract is in force
func (c *Contratacion) EstaVigente() bool {
	return c.Estado == EstadoVigente
}

// Terminar closes the contract at the end of its term
func (c *Contratacion) Terminar() error {
	if !c.EstaVigente() {
		return ErrContratoNoVigente().WithDetail("estado", c.Estado)
	}

	c.Estado = EstadoTerminada
	c.UpdatedAt = time.Now()
	return nil
}

// Anular voids a contract issued by mistake
func (c *Contratacion) Anular() error {
	if !c.EstaVigente() {
		return ErrContratoNoVigente().WithDetail("estado", c.Estado)
	}

	c.Estado = EstadoAnulada
	c.UpdatedAt = time.Now()
	return nil
}
