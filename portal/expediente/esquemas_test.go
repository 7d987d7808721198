package expediente

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udistrital/unidoc_api/pkg/validez"
)

func conArchivoPdf(campos map[string]string) validez.Formulario {
	return validez.Formulario{
		Campos: campos,
		Archivos: map[string][]validez.Archivo{
			CampoArchivo: {{Nombre: "soporte.pdf", Tamano: 1024, TipoMIME: validez.MIMEPdf}},
		},
	}
}

func camposEstudioGraduado() map[string]string {
	return map[string]string{
		CampoTipoEstudio:       "Pregrado",
		CampoGraduado:          OpcionSi,
		CampoInstitucion:       "Universidad Distrital",
		CampoTituloEstudio:     "Ingeniería de Sistemas",
		CampoTituloConvalidado: OpcionNo,
		CampoFechaInicio:       "2015-01-20",
		CampoFechaFin:          "2020-06-15",
		CampoFechaGraduacion:   "2020-09-10",
	}
}

func TestEsquemaEstudioGraduado(t *testing.T) {
	errs := EsquemaEstudio(validez.ModoCrear).Validar(conArchivoPdf(camposEstudioGraduado()))

	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
}

func TestEsquemaEstudioRamaGraduado(t *testing.T) {
	t.Run("graduado exige fecha de graduación", func(t *testing.T) {
		campos := camposEstudioGraduado()
		delete(campos, CampoFechaGraduacion)

		errs := EsquemaEstudio(validez.ModoCrear).Validar(conArchivoPdf(campos))

		assert.Equal(t, "Este campo es obligatorio", errs.Mensaje(CampoFechaGraduacion))
	})

	t.Run("no graduado exige posible fecha de graduación", func(t *testing.T) {
		campos := camposEstudioGraduado()
		campos[CampoGraduado] = OpcionNo
		delete(campos, CampoFechaGraduacion)

		errs := EsquemaEstudio(validez.ModoCrear).Validar(conArchivoPdf(campos))

		assert.Equal(t, "Este campo es obligatorio", errs.Mensaje(CampoPosibleFechaGraduacion))
	})

	t.Run("fecha de graduación poblada en la rama inactiva sigue siendo válida", func(t *testing.T) {
		campos := camposEstudioGraduado()
		campos[CampoGraduado] = OpcionNo
		campos[CampoPosibleFechaGraduacion] = "2026-12-15"
		// fecha_graduacion queda poblada aunque la rama esté inactiva

		esquema := EsquemaEstudio(validez.ModoCrear)
		form := conArchivoPdf(campos)

		errs := esquema.Validar(form)
		assert.True(t, errs.Valido(), "errores inesperados: %v", errs)

		limpio := esquema.Limpiar(form)
		assert.Equal(t, "", limpio.Campos[CampoFechaGraduacion])
		assert.Equal(t, "2026-12-15", limpio.Campos[CampoPosibleFechaGraduacion])
	})
}

func TestEsquemaEstudioConvalidacion(t *testing.T) {
	t.Run("convalidado exige fecha y resolución", func(t *testing.T) {
		campos := camposEstudioGraduado()
		campos[CampoTituloConvalidado] = OpcionSi

		errs := EsquemaEstudio(validez.ModoCrear).Validar(conArchivoPdf(campos))

		assert.Equal(t, "Este campo es obligatorio", errs.Mensaje(CampoFechaConvalidacion))
		assert.Equal(t, "Este campo es obligatorio", errs.Mensaje(CampoResolucionConvalidacion))
	})

	t.Run("no convalidado limpia los campos de convalidación", func(t *testing.T) {
		campos := camposEstudioGraduado()
		campos[CampoFechaConvalidacion] = "2021-03-01"
		campos[CampoResolucionConvalidacion] = "RES-2021-0042"

		limpio := EsquemaEstudio(validez.ModoCrear).Limpiar(conArchivoPdf(campos))

		assert.Equal(t, "", limpio.Campos[CampoFechaConvalidacion])
		assert.Equal(t, "", limpio.Campos[CampoResolucionConvalidacion])
	})
}

func TestEsquemaEstudioFechasEstrictas(t *testing.T) {
	// En estudios la fecha final debe ser estrictamente posterior a la inicial
	campos := camposEstudioGraduado()
	campos[CampoFechaFin] = campos[CampoFechaInicio]

	errs := EsquemaEstudio(validez.ModoCrear).Validar(conArchivoPdf(campos))

	assert.Equal(t, "La fecha final debe ser posterior a la fecha de inicio", errs.Mensaje(CampoFechaFin))
}

func TestEsquemaEstudioArchivoPorModo(t *testing.T) {
	campos := camposEstudioGraduado()
	sinArchivo := validez.Formulario{Campos: campos}

	t.Run("crear exige el archivo", func(t *testing.T) {
		errs := EsquemaEstudio(validez.ModoCrear).Validar(sinArchivo)
		assert.Equal(t, "Debe adjuntar un archivo", errs.Mensaje(CampoArchivo))
	})

	t.Run("actualizar conserva el archivo ya cargado", func(t *testing.T) {
		errs := EsquemaEstudio(validez.ModoActualizar).Validar(sinArchivo)
		assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
	})
}

func camposExperiencia() map[string]string {
	return map[string]string{
		CampoTipoExperiencia:        "Docencia",
		CampoInstitucionExperiencia: "Universidad Nacional",
		CampoTrabajoActual:          OpcionNo,
		CampoCargo:                  "Docente de cátedra",
		CampoIntensidadHoraria:      "40",
		CampoFechaInicio:            "2021-02-01",
		CampoFechaFinalizacion:      "2023-12-15",
	}
}

func TestEsquemaExperiencia(t *testing.T) {
	errs := EsquemaExperiencia(validez.ModoCrear).Validar(conArchivoPdf(camposExperiencia()))

	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
}

func TestEsquemaExperienciaTrabajoActual(t *testing.T) {
	t.Run("trabajo terminado exige fecha de finalización", func(t *testing.T) {
		campos := camposExperiencia()
		delete(campos, CampoFechaFinalizacion)

		errs := EsquemaExperiencia(validez.ModoCrear).Validar(conArchivoPdf(campos))

		assert.Equal(t, "Este campo es obligatorio", errs.Mensaje(CampoFechaFinalizacion))
	})

	t.Run("trabajo actual no la exige y la limpia", func(t *testing.T) {
		campos := camposExperiencia()
		campos[CampoTrabajoActual] = OpcionSi

		esquema := EsquemaExperiencia(validez.ModoCrear)
		form := conArchivoPdf(campos)

		errs := esquema.Validar(form)
		assert.True(t, errs.Valido(), "errores inesperados: %v", errs)

		limpio := esquema.Limpiar(form)
		assert.Equal(t, "", limpio.Campos[CampoFechaFinalizacion])
	})
}

func TestEsquemaExperienciaFechasInclusivas(t *testing.T) {
	// Una experiencia de un solo día es válida
	campos := camposExperiencia()
	campos[CampoFechaFinalizacion] = campos[CampoFechaInicio]

	errs := EsquemaExperiencia(validez.ModoCrear).Validar(conArchivoPdf(campos))

	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
}

func TestEsquemaExperienciaIntensidadHoraria(t *testing.T) {
	testCases := []struct {
		name  string
		valor string
		want  string
	}{
		{name: "dentro del rango", valor: "168", want: ""},
		{name: "sobre el tope semanal", valor: "169", want: "Máximo 168"},
		{name: "cero", valor: "0", want: "Debe ser un número positivo"},
		{name: "no entero", valor: "40.5", want: "Debe ser un número entero"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			campos := camposExperiencia()
			campos[CampoIntensidadHoraria] = tc.valor

			errs := EsquemaExperiencia(validez.ModoCrear).Validar(conArchivoPdf(campos))

			assert.Equal(t, tc.want, errs.Mensaje(CampoIntensidadHoraria))
		})
	}
}

func TestEsquemaIdioma(t *testing.T) {
	campos := map[string]string{
		CampoIdioma:            "Inglés",
		CampoInstitucionIdioma: "Consejo Británico",
		CampoNivel:             "B2",
		CampoFechaCertificado:  "2023-05-10",
	}

	errs := EsquemaIdioma(validez.ModoCrear).Validar(conArchivoPdf(campos))
	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)

	t.Run("nivel fuera del marco común falla", func(t *testing.T) {
		campos[CampoNivel] = "B3"
		errs := EsquemaIdioma(validez.ModoCrear).Validar(conArchivoPdf(campos))
		assert.Equal(t, "Seleccione una opción", errs.Mensaje(CampoNivel))
		campos[CampoNivel] = "B2"
	})

	t.Run("certificado futuro falla", func(t *testing.T) {
		campos[CampoFechaCertificado] = "2099-01-01"
		errs := EsquemaIdioma(validez.ModoCrear).Validar(conArchivoPdf(campos))
		assert.Equal(t, "No puede ser hoy ni una fecha futura", errs.Mensaje(CampoFechaCertificado))
	})

	t.Run("certificado fechado hoy falla", func(t *testing.T) {
		campos[CampoFechaCertificado] = time.Now().Format("2006-01-02")
		errs := EsquemaIdioma(validez.ModoCrear).Validar(conArchivoPdf(campos))
		assert.Equal(t, "No puede ser hoy ni una fecha futura", errs.Mensaje(CampoFechaCertificado))
	})
}

func camposEps() map[string]string {
	return map[string]string{
		CampoTipoAfiliacion:          "Contributivo",
		CampoNombreEps:               "Sanitas",
		CampoEstadoAfiliacion:        "Activa",
		CampoFechaAfiliacionEfectiva: "2020-01-01",
		CampoTipoAfiliado:            "Cotizante",
		CampoNumeroAfiliado:          "123456789",
	}
}

func TestEsquemaEpsArchivoOpcionalEnAmbosModos(t *testing.T) {
	sinArchivo := validez.Formulario{Campos: camposEps()}

	for _, modo := range []validez.Modo{validez.ModoCrear, validez.ModoActualizar} {
		errs := EsquemaEps(modo).Validar(sinArchivo)
		assert.True(t, errs.Valido(), "modo %s: errores inesperados: %v", modo, errs)
	}
}

func TestEsquemaEpsAdmiteImagenEscaneada(t *testing.T) {
	form := validez.Formulario{
		Campos: camposEps(),
		Archivos: map[string][]validez.Archivo{
			CampoArchivo: {{Nombre: "certificado.png", Tamano: 1024, TipoMIME: validez.MIMEPng}},
		},
	}

	errs := EsquemaEps(validez.ModoCrear).Validar(form)

	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
}

func TestEsquemaEpsFechasDeAfiliacion(t *testing.T) {
	campos := camposEps()
	campos[CampoFechaFinalizacionAfiliacion] = "2019-12-31"

	errs := EsquemaEps(validez.ModoCrear).Validar(validez.Formulario{Campos: campos})

	assert.Equal(t, "La fecha final no puede ser anterior a la fecha de inicio", errs.Mensaje(CampoFechaFinalizacionAfiliacion))
}

func camposRut() map[string]string {
	return map[string]string{
		CampoNumeroRut:                    "900123456",
		CampoRazonSocial:                  "Pérez Consultores",
		CampoTipoPersona:                  "Natural",
		CampoCodigoCiiu:                   "8530",
		CampoResponsabilidadesTributarias: "05 - Impuesto sobre la renta; 48 - IVA",
	}
}

func TestEsquemaRut(t *testing.T) {
	errs := EsquemaRut(validez.ModoCrear).Validar(conArchivoPdf(camposRut()))

	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
}

func TestEsquemaRutResponsabilidadesSonTextoLibre(t *testing.T) {
	// El punto y coma y los guiones no disparan la restricción de caracteres
	campos := camposRut()
	campos[CampoResponsabilidadesTributarias] = "05; 48; 52 (autorretenedor)"

	errs := EsquemaRut(validez.ModoCrear).Validar(conArchivoPdf(campos))

	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
}

func TestEsquemaRutCodigoCiiu(t *testing.T) {
	campos := camposRut()
	campos[CampoCodigoCiiu] = "85"

	errs := EsquemaRut(validez.ModoCrear).Validar(conArchivoPdf(campos))

	assert.Equal(t, "Mínimo 4 caracteres", errs.Mensaje(CampoCodigoCiiu))
}

func TestEsquemaRutArchivoPorModo(t *testing.T) {
	sinArchivo := validez.Formulario{Campos: camposRut()}

	t.Run("crear exige el archivo", func(t *testing.T) {
		errs := EsquemaRut(validez.ModoCrear).Validar(sinArchivo)
		assert.Equal(t, "Debe adjuntar un archivo", errs.Mensaje(CampoArchivo))
	})

	t.Run("actualizar no lo exige", func(t *testing.T) {
		errs := EsquemaRut(validez.ModoActualizar).Validar(sinArchivo)
		assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
	})
}

func TestEsquemaPara(t *testing.T) {
	for _, tipo := range []TipoRegistro{TipoEstudio, TipoExperiencia, TipoIdioma, TipoEps, TipoRut} {
		esquema, err := EsquemaPara(tipo, validez.ModoCrear)
		assert.NoError(t, err)
		assert.NotNil(t, esquema)
	}

	_, err := EsquemaPara(TipoRegistro("HOBBIES"), validez.ModoCrear)
	assert.Error(t, err)
}
