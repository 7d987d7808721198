package convocatoria

import (
	"github.com/udistrital/unidoc_api/pkg/validez"
)

// Nombres de campo del formulario de convocatoria
const (
	CampoNombre           = "nombre_convocatoria"
	CampoEstado           = "estado_convocatoria"
	CampoTipo             = "tipo"
	CampoFechaPublicacion = "fecha_publicacion"
	CampoFechaCierre      = "fecha_cierre"
	CampoDescripcion      = "descripcion"
	CampoArchivo          = "archivo"
)

// EsquemaConvocatoria valida el formulario de convocatoria. El cierre no
// puede preceder a la publicación; cerrar el mismo día es válido. La
// descripción es texto libre y no lleva restricción de caracteres.
func EsquemaConvocatoria(modo validez.Modo) *validez.Esquema {
	return validez.NuevoEsquema().
		Campo(CampoNombre, validez.Longitud(5, 120), validez.SinSimbolos()).
		Campo(CampoEstado, validez.OpcionDe(
			string(EstadoAbierta), string(EstadoCerrada), string(EstadoFinalizada),
		)).
		Campo(CampoTipo, validez.OpcionDe(
			string(TipoDocentePlanta), string(TipoDocenteOcasional), string(TipoHoraCatedra),
		)).
		Campo(CampoFechaPublicacion, validez.FechaValida()).
		Campo(CampoFechaCierre, validez.FechaValida()).
		Campo(CampoDescripcion, validez.Longitud(10, 2000)).
		Archivo(CampoArchivo, modo == validez.ModoCrear, validez.MIMEPdf).
		Refinar(
			validez.FechaNoAnterior(CampoFechaPublicacion, CampoFechaCierre),
		)
}
