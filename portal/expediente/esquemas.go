package expediente

import (
	"github.com/udistrital/unidoc_api/pkg/validez"
)

// Nombres de campo de los formularios del expediente. Coinciden con los
// nombres que envía el frontend y con las rutas de campo de los errores.
const (
	// Estudio
	CampoTipoEstudio             = "tipo_estudio"
	CampoGraduado                = "graduado"
	CampoInstitucion             = "institucion"
	CampoTituloEstudio           = "titulo_estudio"
	CampoTituloConvalidado       = "titulo_convalidado"
	CampoFechaInicio             = "fecha_inicio"
	CampoFechaFin                = "fecha_fin"
	CampoFechaGraduacion         = "fecha_graduacion"
	CampoPosibleFechaGraduacion  = "posible_fecha_graduacion"
	CampoResolucionConvalidacion = "resolucion_convalidacion"
	CampoFechaConvalidacion      = "fecha_convalidacion"

	// Experiencia
	CampoTipoExperiencia        = "tipo_experiencia"
	CampoInstitucionExperiencia = "institucion_experiencia"
	CampoTrabajoActual          = "trabajo_actual"
	CampoCargo                  = "cargo"
	CampoIntensidadHoraria      = "intensidad_horaria"
	CampoFechaFinalizacion      = "fecha_finalizacion"

	// Idioma
	CampoIdioma            = "idioma"
	CampoInstitucionIdioma = "institucion_idioma"
	CampoNivel             = "nivel"
	CampoFechaCertificado  = "fecha_certificado"

	// Eps
	CampoTipoAfiliacion              = "tipo_afiliacion"
	CampoNombreEps                   = "nombre_eps"
	CampoEstadoAfiliacion            = "estado_afiliacion"
	CampoFechaAfiliacionEfectiva     = "fecha_afiliacion_efectiva"
	CampoFechaFinalizacionAfiliacion = "fecha_finalizacion_afiliacion"
	CampoTipoAfiliado                = "tipo_afiliado"
	CampoNumeroAfiliado              = "numero_afiliado"

	// Rut
	CampoNumeroRut                    = "numero_rut"
	CampoRazonSocial                  = "razon_social"
	CampoTipoPersona                  = "tipo_persona"
	CampoCodigoCiiu                   = "codigo_ciiu"
	CampoResponsabilidadesTributarias = "responsabilidades_tributarias"

	// Nombre del adjunto en todos los formularios
	CampoArchivo = "archivo"
)

const (
	OpcionSi = "Si"
	OpcionNo = "No"
)

// EsquemaEstudio valida un registro de estudio. Las ramas graduado y
// titulo_convalidado condicionan qué fechas son exigidas; los campos de la
// rama inactiva se vacían antes de persistir.
func EsquemaEstudio(modo validez.Modo) *validez.Esquema {
	return validez.NuevoEsquema().
		Campo(CampoTipoEstudio, validez.OpcionDe("Pregrado", "Especialización", "Maestría", "Doctorado", "Diplomado")).
		Campo(CampoGraduado, validez.OpcionDe(OpcionSi, OpcionNo)).
		Campo(CampoInstitucion, validez.Longitud(3, 100), validez.SinSimbolos()).
		Campo(CampoTituloEstudio, validez.Longitud(3, 100), validez.SinSimbolos()).
		Campo(CampoTituloConvalidado, validez.OpcionDe(OpcionSi, OpcionNo)).
		Campo(CampoFechaInicio, validez.FechaValida()).
		Campo(CampoFechaFin, validez.FechaValida()).
		CampoOpcional(CampoFechaGraduacion, validez.FechaValida()).
		CampoOpcional(CampoPosibleFechaGraduacion, validez.FechaValida()).
		CampoOpcional(CampoResolucionConvalidacion, validez.Longitud(3, 50), validez.SinSimbolos()).
		CampoOpcional(CampoFechaConvalidacion, validez.FechaValida()).
		Archivo(CampoArchivo, modo == validez.ModoCrear, validez.MIMEPdf).
		Refinar(
			validez.FechaPosterior(CampoFechaInicio, CampoFechaFin),
			validez.RequeridoSi(CampoGraduado, OpcionSi, CampoFechaGraduacion),
			validez.RequeridoSi(CampoGraduado, OpcionNo, CampoPosibleFechaGraduacion),
			validez.RequeridoSi(CampoTituloConvalidado, OpcionSi, CampoFechaConvalidacion, CampoResolucionConvalidacion),
		).
		LimpiarSi(CampoGraduado, OpcionSi, CampoPosibleFechaGraduacion).
		LimpiarSi(CampoGraduado, OpcionNo, CampoFechaGraduacion).
		LimpiarSi(CampoTituloConvalidado, OpcionNo, CampoFechaConvalidacion, CampoResolucionConvalidacion)
}

// EsquemaExperiencia valida un registro de experiencia laboral.
// trabajo_actual=Si omite la fecha de finalización; con trabajo terminado la
// fecha final no puede preceder a la inicial.
func EsquemaExperiencia(modo validez.Modo) *validez.Esquema {
	return validez.NuevoEsquema().
		Campo(CampoTipoExperiencia, validez.OpcionDe("Docencia", "Investigación", "Profesional", "Dirección Académica")).
		Campo(CampoInstitucionExperiencia, validez.Longitud(3, 100), validez.SinSimbolos()).
		Campo(CampoTrabajoActual, validez.OpcionDe(OpcionSi, OpcionNo)).
		Campo(CampoCargo, validez.Longitud(3, 80), validez.SinSimbolos()).
		Campo(CampoIntensidadHoraria, validez.EnteroPositivo(), validez.MaximoValor(168)).
		Campo(CampoFechaInicio, validez.FechaValida()).
		CampoOpcional(CampoFechaFinalizacion, validez.FechaValida()).
		Archivo(CampoArchivo, modo == validez.ModoCrear, validez.MIMEPdf).
		Refinar(
			validez.RequeridoSi(CampoTrabajoActual, OpcionNo, CampoFechaFinalizacion),
			validez.FechaNoAnterior(CampoFechaInicio, CampoFechaFinalizacion),
		).
		LimpiarSi(CampoTrabajoActual, OpcionSi, CampoFechaFinalizacion)
}

// EsquemaIdioma valida un certificado de idioma. La fecha del certificado
// no puede ser hoy ni futura.
func EsquemaIdioma(modo validez.Modo) *validez.Esquema {
	return validez.NuevoEsquema().
		Campo(CampoIdioma, validez.Longitud(2, 40), validez.SinSimbolos()).
		Campo(CampoInstitucionIdioma, validez.Longitud(3, 100), validez.SinSimbolos()).
		Campo(CampoNivel, validez.OpcionDe("A1", "A2", "B1", "B2", "C1", "C2")).
		Campo(CampoFechaCertificado, validez.FechaPasada()).
		Archivo(CampoArchivo, modo == validez.ModoCrear, validez.MIMEPdf)
}

// EsquemaEps valida la afiliación a salud. El certificado es opcional tanto
// al crear como al editar; cuando viene, admite PDF o imagen escaneada.
func EsquemaEps(modo validez.Modo) *validez.Esquema {
	return validez.NuevoEsquema().
		Campo(CampoTipoAfiliacion, validez.OpcionDe("Contributivo", "Subsidiado", "Especial")).
		Campo(CampoNombreEps, validez.Longitud(3, 80), validez.SinSimbolos()).
		Campo(CampoEstadoAfiliacion, validez.OpcionDe("Activa", "Suspendida", "Retirada")).
		Campo(CampoFechaAfiliacionEfectiva, validez.FechaValida()).
		CampoOpcional(CampoFechaFinalizacionAfiliacion, validez.FechaValida()).
		Campo(CampoTipoAfiliado, validez.OpcionDe("Cotizante", "Beneficiario", "Adicional")).
		Campo(CampoNumeroAfiliado, validez.Longitud(4, 20), validez.Numerico()).
		Archivo(CampoArchivo, false, validez.MIMEPdf, validez.MIMEPng, validez.MIMEJpeg).
		Refinar(
			validez.FechaNoAnterior(CampoFechaAfiliacionEfectiva, CampoFechaFinalizacionAfiliacion),
		)
}

// EsquemaRut valida el registro tributario. Las responsabilidades
// tributarias son texto libre y no llevan restricción de caracteres.
func EsquemaRut(modo validez.Modo) *validez.Esquema {
	return validez.NuevoEsquema().
		Campo(CampoNumeroRut, validez.Longitud(9, 15), validez.Numerico()).
		Campo(CampoRazonSocial, validez.Longitud(3, 100), validez.SinSimbolos()).
		Campo(CampoTipoPersona, validez.OpcionDe("Natural", "Jurídica")).
		Campo(CampoCodigoCiiu, validez.Longitud(4, 4), validez.Numerico()).
		Campo(CampoResponsabilidadesTributarias, validez.Longitud(3, 200)).
		Archivo(CampoArchivo, modo == validez.ModoCrear, validez.MIMEPdf)
}

// EsquemaPara resuelve el esquema de un tipo de registro en el modo dado
func EsquemaPara(tipo TipoRegistro, modo validez.Modo) (*validez.Esquema, error) {
	switch tipo {
	case TipoEstudio:
		return EsquemaEstudio(modo), nil
	case TipoExperiencia:
		return EsquemaExperiencia(modo), nil
	case TipoIdioma:
		return EsquemaIdioma(modo), nil
	case TipoEps:
		return EsquemaEps(modo), nil
	case TipoRut:
		return EsquemaRut(modo), nil
	default:
		return nil, ErrTipoRegistroInvalido().WithDetail("tipo", tipo)
	}
}
