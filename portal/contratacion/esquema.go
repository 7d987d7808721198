package contratacion

import (
	"github.com/udistrital/unidoc_api/pkg/validez"
)

// Nombres de campo del formulario de contratación
const (
	CampoTipoContrato  = "tipo_contrato"
	CampoArea          = "area"
	CampoFechaInicio   = "fecha_inicio"
	CampoFechaFin      = "fecha_fin"
	CampoValorContrato = "valor_contrato"
	CampoObservaciones = "observaciones"
)

// EsquemaContratacion valida el formulario de contrato. La fecha final no
// puede preceder a la inicial; un contrato de un solo día es válido. Las
// observaciones son texto libre sin restricción de caracteres.
func EsquemaContratacion() *validez.Esquema {
	return validez.NuevoEsquema().
		Campo(CampoTipoContrato, validez.OpcionDe(
			string(TipoPrestacionServicios), string(TipoTerminoFijo), string(TipoTerminoIndefinido),
		)).
		Campo(CampoArea, validez.OpcionDe(
			string(AreaDocencia), string(AreaInvestigacion), string(AreaExtension),
			string(AreaAdministrativa), string(AreaBienestar),
		)).
		Campo(CampoFechaInicio, validez.FechaValida()).
		Campo(CampoFechaFin, validez.FechaValida()).
		Campo(CampoValorContrato, validez.EnteroPositivo()).
		CampoOpcional(CampoObservaciones, validez.Longitud(3, 500)).
		Refinar(
			validez.FechaNoAnterior(CampoFechaInicio, CampoFechaFin),
		)
}
