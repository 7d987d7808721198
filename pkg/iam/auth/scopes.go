package auth

import "github.com/udistrital/unidoc_api/pkg/kernel"

// ============================================================================
// DOMAIN-SPECIFIC SCOPES - UniDoc recruitment portal
// ============================================================================

const (
	ScopeAll = "*"

	// Convocatoria scopes
	ScopeConvocatoriasAll    = "convocatorias:*"
	ScopeConvocatoriasRead   = "convocatorias:read"
	ScopeConvocatoriasWrite  = "convocatorias:write"
	ScopeConvocatoriasDelete = "convocatorias:delete"
	ScopeConvocatoriasCerrar = "convocatorias:cerrar" // Close/finalize postings

	// Expediente scopes (applicant records: estudios, experiencias, idiomas, EPS, RUT)
	ScopeExpedientesAll     = "expedientes:*"
	ScopeExpedientesRead    = "expedientes:read"
	ScopeExpedientesWrite   = "expedientes:write"
	ScopeExpedientesDelete  = "expedientes:delete"
	ScopeExpedientesRevisar = "expedientes:revisar" // HR review of submitted records
	ScopeExpedientesPropio  = "expedientes:propio"  // Applicant's own records only

	// Aspirante scopes
	ScopeAspirantesAll    = "aspirantes:*"
	ScopeAspirantesRead   = "aspirantes:read"
	ScopeAspirantesWrite  = "aspirantes:write"
	ScopeAspirantesDelete = "aspirantes:delete"

	// Contratacion scopes
	ScopeContratacionesAll   = "contrataciones:*"
	ScopeContratacionesRead  = "contrataciones:read"
	ScopeContratacionesWrite = "contrataciones:write"
)

// ScopesForRol resolves the scope set granted to each portal role.
// The role is decoded once from the token and carried explicitly; handlers
// never re-decode it.
func ScopesForRol(rol kernel.Rol) []string {
	switch rol {
	case kernel.RolAspirante, kernel.RolDocente:
		return []string{
			ScopeConvocatoriasRead,
			ScopeExpedientesPropio,
			ScopeExpedientesWrite,
		}
	case kernel.RolTalentoHumano:
		return []string{
			ScopeConvocatoriasAll,
			ScopeExpedientesAll,
			ScopeAspirantesAll,
			ScopeContratacionesAll,
		}
	default:
		return nil
	}
}

// ScopeDescriptions provides descriptions for admin tooling
var ScopeDescriptions = map[string]string{
	ScopeConvocatoriasAll:    "Full access to job postings",
	ScopeConvocatoriasRead:   "View job postings",
	ScopeConvocatoriasWrite:  "Create and edit job postings",
	ScopeConvocatoriasDelete: "Delete job postings",
	ScopeConvocatoriasCerrar: "Close and finalize job postings",

	ScopeExpedientesAll:     "Full access to applicant records",
	ScopeExpedientesRead:    "View applicant records",
	ScopeExpedientesWrite:   "Create and edit applicant records",
	ScopeExpedientesDelete:  "Delete applicant records",
	ScopeExpedientesRevisar: "Review submitted applicant records",
	ScopeExpedientesPropio:  "Access own applicant records",

	ScopeAspirantesAll:    "Full access to applicant accounts",
	ScopeAspirantesRead:   "View applicant accounts",
	ScopeAspirantesWrite:  "Create and edit applicant accounts",
	ScopeAspirantesDelete: "Delete applicant accounts",

	ScopeContratacionesAll:   "Full access to contracts",
	ScopeContratacionesRead:  "View contracts",
	ScopeContratacionesWrite: "Issue and edit contracts",
}
