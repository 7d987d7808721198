package validez

import (
	"time"
)

// FormatoFecha es el formato de fecha de todos los formularios del portal
const FormatoFecha = "2006-01-02"

const MensajeFormatoFecha = "Formato de fecha incorrecto"

// ahora es reemplazable en pruebas
var ahora = time.Now

// ParseFecha interpreta una fecha de formulario
func ParseFecha(valor string) (time.Time, bool) {
	t, err := time.Parse(FormatoFecha, valor)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// hoy retorna la fecha local actual como medianoche UTC, el mismo marco
// en que ParseFecha interpreta las fechas del formulario
func hoy() time.Time {
	n := ahora()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// FechaValida exige una fecha interpretable
func FechaValida() Regla {
	return func(valor string) string {
		if _, ok := ParseFecha(valor); !ok {
			return MensajeFormatoFecha
		}
		return ""
	}
}

// FechaPasada exige una fecha estrictamente anterior a hoy. Se usa para
// fechas de certificados y de nacimiento: hoy mismo no es aceptado.
func FechaPasada() Regla {
	return func(valor string) string {
		fecha, ok := ParseFecha(valor)
		if !ok {
			return MensajeFormatoFecha
		}
		if !fecha.Before(hoy()) {
			return "No puede ser hoy ni una fecha futura"
		}
		return ""
	}
}

// FechaNoAnterior es un refinamiento entre dos campos: la fecha final no
// puede ser anterior a la inicial (límite inclusivo: final == inicial pasa).
// El error se adjunta al campo final.
func FechaNoAnterior(campoInicio, campoFin string) Refinamiento {
	return func(f Formulario, errs Errores) {
		inicio, okInicio := ParseFecha(f.Campo(campoInicio))
		fin, okFin := ParseFecha(f.Campo(campoFin))
		if !okInicio || !okFin {
			return
		}
		if fin.Before(inicio) {
			errs.Agregar(campoFin, "La fecha final no puede ser anterior a la fecha de inicio")
		}
	}
}

// FechaPosterior es la variante estricta: la fecha final debe ser
// posterior a la inicial (final == inicial falla).
func FechaPosterior(campoInicio, campoFin string) Refinamiento {
	return func(f Formulario, errs Errores) {
		inicio, okInicio := ParseFecha(f.Campo(campoInicio))
		fin, okFin := ParseFecha(f.Campo(campoFin))
		if !okInicio || !okFin {
			return
		}
		if !fin.After(inicio) {
			errs.Agregar(campoFin, "La fecha final debe ser posterior a la fecha de inicio")
		}
	}
}
