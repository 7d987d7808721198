package aspiranteapi

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/udistrital/unidoc_api/portal/aspirante"
)

func postPaso(t *testing.T, app *fiber.App, req aspirante.AvanzarPasoRequest) aspirante.PasoResponse {
	t.Helper()

	body, err := json.Marshal(req)
	assert.NoError(t, err)

	httpReq := httptest.NewRequest(fiber.MethodPost, "/api/registro/paso", bytes.NewReader(body))
	httpReq.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(httpReq)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var paso aspirante.PasoResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&paso))
	return paso
}

func TestValidarPaso(t *testing.T) {
	app := fiber.New()
	app.Post("/api/registro/paso", NewHandlers(nil).ValidarPaso)

	t.Run("paso inválido retorna errores por campo", func(t *testing.T) {
		paso := postPaso(t, app, aspirante.AvanzarPasoRequest{
			Paso: 1,
			Campos: map[string]string{
				aspirante.CampoPrimerNombre: "María",
			},
		})

		assert.Equal(t, 1, paso.Paso)
		assert.False(t, paso.Valido)
		assert.Equal(t, "Este campo es obligatorio", paso.Errores[aspirante.CampoPrimerApellido])
		assert.NotContains(t, paso.Errores, aspirante.CampoPrimerNombre)
	})

	t.Run("paso válido anuncia los campos siguientes", func(t *testing.T) {
		paso := postPaso(t, app, aspirante.AvanzarPasoRequest{
			Paso: 1,
			Campos: map[string]string{
				aspirante.CampoPrimerNombre:   "María",
				aspirante.CampoPrimerApellido: "Rojas",
			},
		})

		assert.True(t, paso.Valido)
		assert.Empty(t, paso.Errores)
		assert.Equal(t, 2, paso.SiguientePaso)
		assert.Equal(t, aspirante.CamposDelPaso(2), paso.CamposSiguientes)
	})
}
