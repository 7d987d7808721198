package validez

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongitud(t *testing.T) {
	regla := Longitud(3, 10)

	testCases := []struct {
		name  string
		valor string
		want  string
	}{
		{name: "debajo del mínimo", valor: "ab", want: "Mínimo 3 caracteres"},
		{name: "en el mínimo", valor: "abc", want: ""},
		{name: "en el máximo", valor: "abcdefghij", want: ""},
		{name: "sobre el máximo", valor: "abcdefghijk", want: "Máximo 10 caracteres"},
		{name: "cuenta runas no bytes", valor: "ñáé", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, regla(tc.valor))
		})
	}
}

func TestSinSimbolos(t *testing.T) {
	regla := SinSimbolos()

	testCases := []struct {
		name  string
		valor string
		want  string
	}{
		{name: "letras y espacios", valor: "Universidad Distrital", want: ""},
		{name: "acentos y eñes", valor: "Gómez Peñalosa", want: ""},
		{name: "dígitos y guiones", valor: "Calle 40-15", want: ""},
		{name: "emoji", valor: "hola 😀", want: "Caracteres no permitidos"},
		{name: "puntuación", valor: "hola!", want: "Caracteres no permitidos"},
		{name: "arroba", valor: "a@b", want: "Caracteres no permitidos"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, regla(tc.valor))
		})
	}
}

func TestEnteroPositivo(t *testing.T) {
	regla := EnteroPositivo()

	assert.Equal(t, "", regla("40"))
	assert.Equal(t, "Debe ser un número positivo", regla("0"))
	assert.Equal(t, "Debe ser un número positivo", regla("-3"))
	assert.Equal(t, "Debe ser un número entero", regla("3.5"))
	assert.Equal(t, "Debe ser un número entero", regla("abc"))
}

func TestMaximoValor(t *testing.T) {
	regla := MaximoValor(5.0)

	assert.Equal(t, "", regla("4.9"))
	assert.Equal(t, "", regla("5.0"))
	assert.Equal(t, "Máximo 5", regla("5.1"))
}

func TestMaxDosDecimales(t *testing.T) {
	regla := MaxDosDecimales()

	assert.Equal(t, "", regla("4.25"))
	assert.Equal(t, "", regla("4"))
	assert.Equal(t, "Máximo dos decimales", regla("4.255"))
}

func TestOpcionDe(t *testing.T) {
	regla := OpcionDe("Masculino", "Femenino", "Otro")

	assert.Equal(t, "", regla("Masculino"))
	assert.Equal(t, "", regla("Otro"))
	assert.Equal(t, "Seleccione una opción", regla("masculino"))
	assert.Equal(t, "Seleccione una opción", regla("X"))
}

func TestCorreo(t *testing.T) {
	regla := Correo()

	assert.Equal(t, "", regla("a@b.com"))
	assert.Equal(t, "Correo electrónico inválido", regla("a@b"))
	assert.Equal(t, "Correo electrónico inválido", regla("no-es-correo"))
}
