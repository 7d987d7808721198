package aspirante

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udistrital/unidoc_api/pkg/validez"
)

func formularioRegistroValido() validez.Formulario {
	return validez.Formulario{Campos: map[string]string{
		CampoPrimerNombre:         "María",
		CampoSegundoNombre:        "José",
		CampoPrimerApellido:       "Gómez",
		CampoSegundoApellido:      "Peñalosa",
		CampoTipoIdentificacion:   "CC",
		CampoNumeroIdentificacion: "1023456789",
		CampoFechaNacimiento:      "1990-05-20",
		CampoGenero:               "Femenino",
		CampoEstadoCivil:          "Soltero(a)",
		CampoTelefono:             "3001234567",
		CampoPaisID:               "57",
		CampoDepartamentoID:       "11",
		CampoMunicipioID:          "1",
		CampoEmail:                "maria.gomez@correo.udistrital.edu.co",
		CampoPassword:             "Secreta.2024",
		CampoPasswordConfirmation: "Secreta.2024",
	}}
}

func TestEsquemaRegistroFormularioValido(t *testing.T) {
	errs := EsquemaRegistro().Validar(formularioRegistroValido())

	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
}

func TestEsquemaRegistroContrasenasDistintas(t *testing.T) {
	form := formularioRegistroValido()
	form.Campos[CampoPasswordConfirmation] = "Secreta.2025"

	errs := EsquemaRegistro().Validar(form)

	assert.Equal(t, "Las contraseñas no coinciden", errs.Mensaje(CampoPasswordConfirmation))
	assert.Equal(t, "", errs.Mensaje(CampoPassword))
}

func TestEsquemaRegistroCamposInvalidos(t *testing.T) {
	testCases := []struct {
		name  string
		campo string
		valor string
		want  string
	}{
		{name: "nombre muy corto", campo: CampoPrimerNombre, valor: "A", want: "Mínimo 2 caracteres"},
		{name: "nombre con símbolos", campo: CampoPrimerNombre, valor: "Ana!", want: "Caracteres no permitidos"},
		{name: "tipo de identificación desconocido", campo: CampoTipoIdentificacion, valor: "NIT", want: "Seleccione una opción"},
		{name: "identificación no numérica", campo: CampoNumeroIdentificacion, valor: "10234567A9", want: "Debe ser un número"},
		{name: "fecha de nacimiento futura", campo: CampoFechaNacimiento, valor: "2099-01-01", want: "No puede ser hoy ni una fecha futura"},
		{name: "género desconocido", campo: CampoGenero, valor: "femenino", want: "Seleccione una opción"},
		{name: "teléfono muy corto", campo: CampoTelefono, valor: "300123", want: "Mínimo 7 caracteres"},
		{name: "país no entero", campo: CampoPaisID, valor: "co", want: "Debe ser un número entero"},
		{name: "correo malformado", campo: CampoEmail, valor: "maria.gomez", want: "Correo electrónico inválido"},
		{name: "contraseña muy corta", campo: CampoPassword, valor: "corta", want: "Mínimo 8 caracteres"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := formularioRegistroValido()
			form.Campos[tc.campo] = tc.valor

			errs := EsquemaRegistro().Validar(form)

			assert.Equal(t, tc.want, errs.Mensaje(tc.campo))
		})
	}
}

func TestEsquemaRegistroSegundosNombresOpcionales(t *testing.T) {
	form := formularioRegistroValido()
	delete(form.Campos, CampoSegundoNombre)
	delete(form.Campos, CampoSegundoApellido)

	errs := EsquemaRegistro().Validar(form)

	assert.True(t, errs.Valido())
}
