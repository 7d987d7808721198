package validez

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const MensajeObligatorio = "Este campo es obligatorio"

// Regla valida un valor de campo y retorna el mensaje de error, o cadena
// vacía si el valor es aceptado. Las reglas son funciones puras.
type Regla func(valor string) string

// Solo letras (cualquier alfabeto), dígitos, espacios y guiones. Rechaza
// emojis y la mayoría de la puntuación.
var caracteresPermitidos = regexp.MustCompile(`^[\p{L}\p{N}\s-]+$`)

var correoValido = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Longitud exige min <= len <= max, contando runas
func Longitud(min, max int) Regla {
	return func(valor string) string {
		n := utf8.RuneCountInString(valor)
		if n < min {
			return fmt.Sprintf("Mínimo %d caracteres", min)
		}
		if n > max {
			return fmt.Sprintf("Máximo %d caracteres", max)
		}
		return ""
	}
}

// SinSimbolos restringe el valor al conjunto de caracteres permitido.
// No se aplica a todos los campos de texto: los campos de texto libre
// (observaciones, descripciones, aptitudes) aceptan cualquier entrada.
func SinSimbolos() Regla {
	return func(valor string) string {
		if !caracteresPermitidos.MatchString(valor) {
			return "Caracteres no permitidos"
		}
		return ""
	}
}

// Numerico exige que el valor sea interpretable como número
func Numerico() Regla {
	return func(valor string) string {
		if _, err := strconv.ParseFloat(valor, 64); err != nil {
			return "Debe ser un número"
		}
		return ""
	}
}

// EnteroPositivo exige un entero estrictamente mayor que cero
func EnteroPositivo() Regla {
	return func(valor string) string {
		n, err := strconv.ParseInt(valor, 10, 64)
		if err != nil {
			return "Debe ser un número entero"
		}
		if n <= 0 {
			return "Debe ser un número positivo"
		}
		return ""
	}
}

// Positivo exige un número estrictamente mayor que cero
func Positivo() Regla {
	return func(valor string) string {
		n, err := strconv.ParseFloat(valor, 64)
		if err != nil {
			return "Debe ser un número"
		}
		if n <= 0 {
			return "Debe ser un número positivo"
		}
		return ""
	}
}

// MaximoValor acota el valor numérico por arriba (p. ej. promedio <= 5.0)
func MaximoValor(max float64) Regla {
	return func(valor string) string {
		n, err := strconv.ParseFloat(valor, 64)
		if err != nil {
			return "Debe ser un número"
		}
		if n > max {
			return fmt.Sprintf("Máximo %v", max)
		}
		return ""
	}
}

// MaxDosDecimales exige a lo sumo dos cifras decimales
func MaxDosDecimales() Regla {
	return func(valor string) string {
		if _, err := strconv.ParseFloat(valor, 64); err != nil {
			return "Debe ser un número"
		}
		if idx := strings.IndexByte(valor, '.'); idx >= 0 && len(valor)-idx-1 > 2 {
			return "Máximo dos decimales"
		}
		return ""
	}
}

// OpcionDe exige pertenencia a un conjunto cerrado de opciones
func OpcionDe(opciones ...string) Regla {
	return func(valor string) string {
		for _, opcion := range opciones {
			if valor == opcion {
				return ""
			}
		}
		return "Seleccione una opción"
	}
}

// Correo exige un correo electrónico bien formado
func Correo() Regla {
	return func(valor string) string {
		if !correoValido.MatchString(valor) {
			return "Correo electrónico inválido"
		}
		return ""
	}
}
