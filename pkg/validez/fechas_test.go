package validez

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fijarAhora(t *testing.T, fecha time.Time) {
	t.Helper()
	original := ahora
	ahora = func() time.Time { return fecha }
	t.Cleanup(func() { ahora = original })
}

func TestFechaValida(t *testing.T) {
	regla := FechaValida()

	assert.Equal(t, "", regla("2024-06-15"))
	assert.Equal(t, "Formato de fecha incorrecto", regla("15/06/2024"))
	assert.Equal(t, "Formato de fecha incorrecto", regla("2024-13-01"))
	assert.Equal(t, "Formato de fecha incorrecto", regla("ayer"))
}

func TestFechaPasada(t *testing.T) {
	fijarAhora(t, time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC))
	regla := FechaPasada()

	testCases := []struct {
		name  string
		valor string
		want  string
	}{
		{name: "ayer pasa", valor: "2024-06-14", want: ""},
		{name: "hoy falla aunque no sea medianoche", valor: "2024-06-15", want: "No puede ser hoy ni una fecha futura"},
		{name: "mañana falla", valor: "2024-06-16", want: "No puede ser hoy ni una fecha futura"},
		{name: "formato inválido", valor: "junio", want: "Formato de fecha incorrecto"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, regla(tc.valor))
		})
	}
}

func TestFechaPasadaZonaLocalOccidental(t *testing.T) {
	// El reloj del servidor puede correr en una zona al oeste de UTC;
	// la fecha de hoy sigue sin ser aceptada.
	bogota := time.FixedZone("America/Bogota", -5*60*60)
	fijarAhora(t, time.Date(2024, 6, 15, 10, 0, 0, 0, bogota))
	regla := FechaPasada()

	assert.Equal(t, "", regla("2024-06-14"))
	assert.Equal(t, "No puede ser hoy ni una fecha futura", regla("2024-06-15"))
	assert.Equal(t, "No puede ser hoy ni una fecha futura", regla("2024-06-16"))
}

func TestFechaNoAnterior(t *testing.T) {
	refinamiento := FechaNoAnterior("fecha_inicio", "fecha_fin")

	testCases := []struct {
		name   string
		inicio string
		fin    string
		want   string
	}{
		{name: "fin anterior falla", inicio: "2024-01-10", fin: "2024-01-09", want: "La fecha final no puede ser anterior a la fecha de inicio"},
		{name: "mismo día pasa", inicio: "2024-01-10", fin: "2024-01-10", want: ""},
		{name: "fin posterior pasa", inicio: "2024-01-10", fin: "2024-01-11", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := make(Errores)
			refinamiento(Formulario{Campos: map[string]string{
				"fecha_inicio": tc.inicio,
				"fecha_fin":    tc.fin,
			}}, errs)

			assert.Equal(t, tc.want, errs.Mensaje("fecha_fin"))
			assert.Equal(t, "", errs.Mensaje("fecha_inicio"))
		})
	}
}

func TestFechaNoAnteriorIgnoraFechasIlegibles(t *testing.T) {
	refinamiento := FechaNoAnterior("fecha_inicio", "fecha_fin")

	errs := make(Errores)
	refinamiento(Formulario{Campos: map[string]string{
		"fecha_inicio": "no-fecha",
		"fecha_fin":    "2024-01-09",
	}}, errs)

	// El error de formato ya lo reporta la regla por campo; el refinamiento
	// no debe duplicarlo ni especular con fechas ilegibles.
	assert.True(t, errs.Valido())
}

func TestFechaPosterior(t *testing.T) {
	refinamiento := FechaPosterior("fecha_inicio", "fecha_fin")

	testCases := []struct {
		name   string
		inicio string
		fin    string
		want   string
	}{
		{name: "fin anterior falla", inicio: "2024-01-10", fin: "2024-01-09", want: "La fecha final debe ser posterior a la fecha de inicio"},
		{name: "mismo día falla", inicio: "2024-01-10", fin: "2024-01-10", want: "La fecha final debe ser posterior a la fecha de inicio"},
		{name: "fin posterior pasa", inicio: "2024-01-10", fin: "2024-01-11", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := make(Errores)
			refinamiento(Formulario{Campos: map[string]string{
				"fecha_inicio": tc.inicio,
				"fecha_fin":    tc.fin,
			}}, errs)

			assert.Equal(t, tc.want, errs.Mensaje("fecha_fin"))
		})
	}
}
