package aspirante

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamposDelPaso(t *testing.T) {
	assert.Equal(t, []string{CampoPrimerNombre, CampoSegundoNombre, CampoPrimerApellido, CampoSegundoApellido}, CamposDelPaso(1))
	assert.Equal(t, []string{CampoEmail, CampoPassword, CampoPasswordConfirmation}, CamposDelPaso(5))
	assert.Nil(t, CamposDelPaso(0))
	assert.Nil(t, CamposDelPaso(6))
}

func TestWizardAvanzarConPasoValido(t *testing.T) {
	w := NuevoRegistroWizard()

	errs := w.Avanzar(map[string]string{
		CampoPrimerNombre:   "María",
		CampoPrimerApellido: "Gómez",
	})

	assert.True(t, errs.Valido())
	assert.Equal(t, 2, w.Paso())
}

func TestWizardNoAvanzaConErrores(t *testing.T) {
	w := NuevoRegistroWizard()

	errs := w.Avanzar(map[string]string{
		CampoPrimerNombre: "M",
	})

	assert.Equal(t, "Mínimo 2 caracteres", errs.Mensaje(CampoPrimerNombre))
	assert.Equal(t, "Este campo es obligatorio", errs.Mensaje(CampoPrimerApellido))
	assert.Equal(t, 1, w.Paso())
}

func TestWizardRetrocederConservaValores(t *testing.T) {
	w := NuevoRegistroWizard()

	w.Avanzar(map[string]string{
		CampoPrimerNombre:   "María",
		CampoPrimerApellido: "Gómez",
	})
	assert.Equal(t, 2, w.Paso())

	w.Retroceder()

	assert.Equal(t, 1, w.Paso())
	assert.Equal(t, "María", w.Valores()[CampoPrimerNombre])
	assert.Equal(t, "Gómez", w.Valores()[CampoPrimerApellido])
}

func TestWizardRetrocederEnElPrimerPasoNoHaceNada(t *testing.T) {
	w := NuevoRegistroWizard()

	w.Retroceder()

	assert.Equal(t, 1, w.Paso())
}

func TestWizardEnviarSoloDesdeElUltimoPaso(t *testing.T) {
	w := NuevoRegistroWizard()

	_, _, err := w.Enviar(map[string]string{})

	assert.NotNil(t, err)
	assert.False(t, w.EnElUltimoPaso())
}

func TestWizardFlujoCompleto(t *testing.T) {
	w := NuevoRegistroWizard()
	completo := formularioRegistroValido().Campos

	pasos := [][]string{
		CamposDelPaso(1), CamposDelPaso(2), CamposDelPaso(3), CamposDelPaso(4),
	}
	for _, campos := range pasos {
		valores := make(map[string]string, len(campos))
		for _, campo := range campos {
			valores[campo] = completo[campo]
		}
		errs := w.Avanzar(valores)
		assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
	}

	assert.True(t, w.EnElUltimoPaso())

	form, errs, err := w.Enviar(map[string]string{
		CampoEmail:                completo[CampoEmail],
		CampoPassword:             completo[CampoPassword],
		CampoPasswordConfirmation: completo[CampoPasswordConfirmation],
	})

	assert.NoError(t, err)
	assert.True(t, errs.Valido(), "errores inesperados: %v", errs)
	assert.Equal(t, completo[CampoPrimerNombre], form.Campos[CampoPrimerNombre])
}
