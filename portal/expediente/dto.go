package expediente

import (
	"time"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// ArchivoAdjunto carries the uploaded attachment of a record form.
// Nil means no file was sent (on update: keep the existing upload).
type ArchivoAdjunto struct {
	Nombre   string
	Tamano   int64
	TipoMIME string
	Datos    []byte
}

// CrearRegistroRequest - alta de un registro del expediente
type CrearRegistroRequest struct {
	Tipo    TipoRegistro      `json:"tipo" validate:"required"`
	Campos  map[string]string `json:"campos" validate:"required"`
	Archivo *ArchivoAdjunto   `json:"-"`
}

// ActualizarRegistroRequest - edición de un registro existente
type ActualizarRegistroRequest struct {
	Campos  map[string]string `json:"campos" validate:"required"`
	Archivo *ArchivoAdjunto   `json:"-"`
}

// RevisarRegistroRequest - dictamen de Talento Humano sobre un registro
type RevisarRegistroRequest struct {
	Decision    EstadoRevision `json:"decision" validate:"required"`
	Observacion string         `json:"observacion,omitempty"`
}

// ListarRegistrosRequest - filtro de listado para Talento Humano
type ListarRegistrosRequest struct {
	AspiranteID kernel.AspiranteID       `json:"aspirante_id,omitempty"`
	Tipo        TipoRegistro             `json:"tipo,omitempty"`
	Revision    EstadoRevision           `json:"revision,omitempty"`
	Pagination  kernel.PaginationOptions `json:"pagination"`
}

// RegistroResponse - registro del expediente expuesto por la API
type RegistroResponse struct {
	ID            kernel.ExpedienteID `json:"id"`
	AspiranteID   kernel.AspiranteID  `json:"aspirante_id"`
	Tipo          TipoRegistro        `json:"tipo"`
	Campos        map[string]string   `json:"campos"`
	ArchivoURL    kernel.BucketURL    `json:"archivo_url,omitempty"`
	ArchivoNombre string              `json:"archivo_nombre,omitempty"`
	Paginas       int                 `json:"paginas,omitempty"`
	Revision      EstadoRevision      `json:"revision"`
	Observacion   string              `json:"observacion,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// Response type alias for paginated records
type PaginatedRegistrosResponse = kernel.Paginated[RegistroResponse]

// ResumenExpedienteResponse - conteo de registros por tipo y estado de
// revisión, usado por el tablero del aspirante
type ResumenExpedienteResponse struct {
	AspiranteID kernel.AspiranteID     `json:"aspirante_id"`
	PorTipo     map[TipoRegistro]int   `json:"por_tipo"`
	PorRevision map[EstadoRevision]int `json:"por_revision"`
	Total       int                    `json:"total"`
}
