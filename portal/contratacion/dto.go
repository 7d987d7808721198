package contratacion

import (
	"time"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// CrearContratacionRequest - alta de contrato (formulario plano)
type CrearContratacionRequest struct {
	AspiranteID kernel.AspiranteID `json:"aspirante_id" validate:"required"`
	Campos      map[string]string  `json:"campos" validate:"required"`
}

// ActualizarContratacionRequest - edición de un contrato vigente
type ActualizarContratacionRequest struct {
	Campos map[string]string `json:"campos" validate:"required"`
}

// ListarContratacionesRequest - filtro de listado
type ListarContratacionesRequest struct {
	AspiranteID kernel.AspiranteID       `json:"aspirante_id,omitempty"`
	Estado      EstadoContratacion       `json:"estado,omitempty"`
	Area        Area                     `json:"area,omitempty"`
	Pagination  kernel.PaginationOptions `json:"pagination"`
}

// ContratacionResponse - contrato expuesto por la API
type ContratacionResponse struct {
	ID            kernel.ContratacionID `json:"id"`
	AspiranteID   kernel.AspiranteID    `json:"aspirante_id"`
	TipoContrato  TipoContrato          `json:"tipo_contrato"`
	Area          Area                  `json:"area"`
	FechaInicio   string                `json:"fecha_inicio"`
	FechaFin      string                `json:"fecha_fin"`
	ValorContrato int64                 `json:"valor_contrato"`
	Observaciones string                `json:"observaciones,omitempty"`
	Estado        EstadoContratacion    `json:"estado"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// Response type alias for paginated contracts
type PaginatedContratacionesResponse = kernel.Paginated[ContratacionResponse]
