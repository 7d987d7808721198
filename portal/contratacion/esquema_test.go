package contratacion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udistrital/unidoc_api/pkg/validez"
)

func formularioContratoValido() validez.Formulario {
	return validez.Formulario{Campos: map[string]string{
		CampoTipoContrato:  "Prestación de Servicios",
		CampoArea:          "Docencia",
		CampoFechaInicio:   "2024-02-01",
		CampoFechaFin:      "2024-12-15",
		CampoValorContrato: "48000000",
		CampoObservaciones: "Contrato asociado a la convocatoria 2024-1.",
	}}
}

func TestEsquemaContratacionValido(t *testing.T) {
	errs := EsquemaContratacion().Validar(formularioContratoValido())

	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
}

func TestEsquemaContratacionFechas(t *testing.T) {
	t.Run("fin anterior al inicio falla", func(t *testing.T) {
		form := formularioContratoValido()
		form.Campos[CampoFechaFin] = "2024-01-31"

		errs := EsquemaContratacion().Validar(form)

		assert.Equal(t, "La fecha final no puede ser anterior a la fecha de inicio", errs.Mensaje(CampoFechaFin))
	})

	t.Run("contrato de un solo día es válido", func(t *testing.T) {
		form := formularioContratoValido()
		form.Campos[CampoFechaFin] = form.Campos[CampoFechaInicio]

		errs := EsquemaContratacion().Validar(form)

		assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
	})
}

func TestEsquemaContratacionValorContrato(t *testing.T) {
	testCases := []struct {
		name  string
		valor string
		want  string
	}{
		{name: "entero positivo", valor: "1500000", want: ""},
		{name: "cero", valor: "0", want: "Debe ser un número positivo"},
		{name: "negativo", valor: "-100", want: "Debe ser un número positivo"},
		{name: "con decimales", valor: "1500000.50", want: "Debe ser un número entero"},
		{name: "no numérico", valor: "un millón", want: "Debe ser un número entero"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := formularioContratoValido()
			form.Campos[CampoValorContrato] = tc.valor

			errs := EsquemaContratacion().Validar(form)

			assert.Equal(t, tc.want, errs.Mensaje(CampoValorContrato))
		})
	}
}

func TestEsquemaContratacionObservaciones(t *testing.T) {
	t.Run("opcionales", func(t *testing.T) {
		form := formularioContratoValido()
		delete(form.Campos, CampoObservaciones)

		errs := EsquemaContratacion().Validar(form)

		assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
	})

	t.Run("texto libre sin restricción de caracteres", func(t *testing.T) {
		form := formularioContratoValido()
		form.Campos[CampoObservaciones] = "Pago mensual (vencido); ver resolución N.º 042/2024."

		errs := EsquemaContratacion().Validar(form)

		assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
	})
}

func TestContratacionTransiciones(t *testing.T) {
	t.Run("terminar vigente", func(t *testing.T) {
		c := &Contratacion{Estado: EstadoVigente}
		assert.NoError(t, c.Terminar())
		assert.Equal(t, EstadoTerminada, c.Estado)
	})

	t.Run("anular vigente", func(t *testing.T) {
		c := &Contratacion{Estado: EstadoVigente}
		assert.NoError(t, c.Anular())
		assert.Equal(t, EstadoAnulada, c.Estado)
	})

	t.Run("terminar anulada falla", func(t *testing.T) {
		c := &Contratacion{Estado: EstadoAnulada}
		assert.Error(t, c.Terminar())
		assert.Equal(t, EstadoAnulada, c.Estado)
	})

	t.Run("anular terminada falla", func(t *testing.T) {
		c := &Contratacion{Estado: EstadoTerminada}
		assert.Error(t, c.Anular())
		assert.Equal(t, EstadoTerminada, c.Estado)
	})
}
