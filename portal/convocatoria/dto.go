package convocatoria

import (
	"time"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// ArchivoAdjunto carries the posting's uploaded terms document
type ArchivoAdjunto struct {
	Nombre   string
	Tamano   int64
	TipoMIME string
	Datos    []byte
}

// CrearConvocatoriaRequest - alta de convocatoria (formulario plano)
type CrearConvocatoriaRequest struct {
	Campos  map[string]string `json:"campos" validate:"required"`
	Archivo *ArchivoAdjunto   `json:"-"`
}

// ActualizarConvocatoriaRequest - edición; sin archivo conserva el existente
type ActualizarConvocatoriaRequest struct {
	Campos  map[string]string `json:"campos" validate:"required"`
	Archivo *ArchivoAdjunto   `json:"-"`
}

// ListarConvocatoriasRequest - filtro de listado para Talento Humano
type ListarConvocatoriasRequest struct {
	Estado     EstadoConvocatoria       `json:"estado,omitempty"`
	Tipo       TipoConvocatoria         `json:"tipo,omitempty"`
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// ConvocatoriaResponse - convocatoria expuesta por la API
type ConvocatoriaResponse struct {
	ID               kernel.ConvocatoriaID `json:"id"`
	Nombre           string                `json:"nombre"`
	Estado           EstadoConvocatoria    `json:"estado"`
	Tipo             TipoConvocatoria      `json:"tipo"`
	FechaPublicacion string                `json:"fecha_publicacion"`
	FechaCierre      string                `json:"fecha_cierre"`
	Descripcion      string                `json:"descripcion"`
	ArchivoURL       kernel.BucketURL      `json:"archivo_url,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// Response type alias for paginated postings
type PaginatedConvocatoriasResponse = kernel.Paginated[ConvocatoriaResponse]
