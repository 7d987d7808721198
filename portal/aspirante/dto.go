package aspirante

import (
	"time"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

// RegistroRequest - formulario plano de registro (todos los pasos)
type RegistroRequest struct {
	Campos map[string]string `json:"campos" validate:"required"`
}

// AvanzarPasoRequest - valores del paso actual del asistente
type AvanzarPasoRequest struct {
	Paso   int               `json:"paso" validate:"required,min=1,max=5"`
	Campos map[string]string `json:"campos" validate:"required"`
}

// LoginRequest - credenciales del portal
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse - token emitido tras autenticación
type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	Rol         kernel.Rol        `json:"rol"`
	Aspirante   AspiranteResponse `json:"aspirante"`
}

// ActualizarPerfilRequest - edición parcial del perfil
type ActualizarPerfilRequest struct {
	Telefono    *string `json:"telefono,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	EstadoCivil *string `json:"estado_civil,omitempty"`
}

// BuscarAspirantesRequest - búsqueda para Talento Humano
type BuscarAspirantesRequest struct {
	Query              string                   `json:"query,omitempty"`
	Email              string                   `json:"email,omitempty"`
	TipoIdentificacion string                   `json:"tipo_identificacion,omitempty"`
	Rol                string                   `json:"rol,omitempty"`
	Pagination         kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated applicants
type PaginatedAspirantesResponse = kernel.Paginated[AspiranteResponse]

// AspiranteResponse - DTO de salida
type AspiranteResponse struct {
	ID              kernel.AspiranteID    `json:"id"`
	Email           kernel.Email          `json:"email"`
	NombreCompleto  string                `json:"nombre_completo"`
	PrimerNombre    string                `json:"primer_nombre"`
	SegundoNombre   string                `json:"segundo_nombre,omitempty"`
	PrimerApellido  string                `json:"primer_apellido"`
	SegundoApellido string                `json:"segundo_apellido,omitempty"`
	Identificacion  kernel.Identificacion `json:"identificacion"`
	FechaNacimiento string                `json:"fecha_nacimiento"`
	Genero          Genero                `json:"genero"`
	EstadoCivil     EstadoCivil           `json:"estado_civil"`
	Telefono        kernel.Telefono       `json:"telefono"`
	PaisID          int                   `json:"pais_id"`
	DepartamentoID  int                   `json:"departamento_id"`
	MunicipioID     int                   `json:"municipio_id"`
	Rol             kernel.Rol            `json:"rol"`
	Estado          EstadoAspirante       `json:"estado"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// PasoResponse - resultado de avanzar un paso del asistente
type PasoResponse struct {
	Paso             int               `json:"paso"`
	Valido           bool              `json:"valido"`
	Errores          map[string]string `json:"errores,omitempty"`
	SiguientePaso    int               `json:"siguiente_paso,omitempty"`
	CamposSiguientes []string          `json:"campos_siguientes,omitempty"`
}
