package convocatoria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udistrital/unidoc_api/pkg/validez"
)

func formularioConvocatoriaValido() validez.Formulario {
	return validez.Formulario{
		Campos: map[string]string{
			CampoNombre:           "Convocatoria Docente 2024-2",
			CampoEstado:           "Abierta",
			CampoTipo:             "Docente de Planta",
			CampoFechaPublicacion: "2024-05-01",
			CampoFechaCierre:      "2024-06-01",
			CampoDescripcion:      "Concurso público de méritos para proveer plazas de planta en la Facultad de Ingeniería.",
		},
		Archivos: map[string][]validez.Archivo{
			CampoArchivo: {{Nombre: "terminos.pdf", Tamano: 1024, TipoMIME: validez.MIMEPdf}},
		},
	}
}

func TestEsquemaConvocatoriaValida(t *testing.T) {
	errs := EsquemaConvocatoria(validez.ModoCrear).Validar(formularioConvocatoriaValido())

	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
}

func TestEsquemaConvocatoriaCierreAntesDePublicacion(t *testing.T) {
	form := formularioConvocatoriaValido()
	form.Campos[CampoFechaPublicacion] = "2024-06-01"
	form.Campos[CampoFechaCierre] = "2024-05-01"

	errs := EsquemaConvocatoria(validez.ModoCrear).Validar(form)

	assert.Equal(t, "La fecha final no puede ser anterior a la fecha de inicio", errs.Mensaje(CampoFechaCierre))
	assert.Equal(t, "", errs.Mensaje(CampoFechaPublicacion))
}

func TestEsquemaConvocatoriaCierreMismoDia(t *testing.T) {
	form := formularioConvocatoriaValido()
	form.Campos[CampoFechaCierre] = form.Campos[CampoFechaPublicacion]

	errs := EsquemaConvocatoria(validez.ModoCrear).Validar(form)

	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
}

func TestEsquemaConvocatoriaDescripcionEsTextoLibre(t *testing.T) {
	form := formularioConvocatoriaValido()
	form.Campos[CampoDescripcion] = "Requisitos: maestría (o doctorado), inglés B2. ¡Postúlese antes del cierre!"

	errs := EsquemaConvocatoria(validez.ModoCrear).Validar(form)

	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
}

func TestEsquemaConvocatoriaCamposInvalidos(t *testing.T) {
	testCases := []struct {
		name  string
		campo string
		valor string
		want  string
	}{
		{name: "nombre muy corto", campo: CampoNombre, valor: "Doc", want: "Mínimo 5 caracteres"},
		{name: "estado desconocido", campo: CampoEstado, valor: "Pausada", want: "Seleccione una opción"},
		{name: "tipo desconocido", campo: CampoTipo, valor: "Visitante", want: "Seleccione una opción"},
		{name: "fecha ilegible", campo: CampoFechaCierre, valor: "01/06/2024", want: "Formato de fecha incorrecto"},
		{name: "descripción muy corta", campo: CampoDescripcion, valor: "Breve", want: "Mínimo 10 caracteres"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := formularioConvocatoriaValido()
			form.Campos[tc.campo] = tc.valor

			errs := EsquemaConvocatoria(validez.ModoCrear).Validar(form)

			assert.Equal(t, tc.want, errs.Mensaje(tc.campo))
		})
	}
}

func TestEsquemaConvocatoriaArchivoPorModo(t *testing.T) {
	form := formularioConvocatoriaValido()
	form.Archivos = nil

	t.Run("crear exige los términos", func(t *testing.T) {
		errs := EsquemaConvocatoria(validez.ModoCrear).Validar(form)
		assert.Equal(t, "Debe adjuntar un archivo", errs.Mensaje(CampoArchivo))
	})

	t.Run("actualizar conserva el archivo ya cargado", func(t *testing.T) {
		errs := EsquemaConvocatoria(validez.ModoActualizar).Validar(form)
		assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
	})
}
