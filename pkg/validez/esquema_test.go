package validez

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarCampoObligatorio(t *testing.T) {
	esquema := NuevoEsquema().
		Campo("nombre", Longitud(3, 50)).
		CampoOpcional("apodo", Longitud(3, 50))

	errs := esquema.Validar(Formulario{Campos: map[string]string{}})

	assert.Equal(t, MensajeObligatorio, errs.Mensaje("nombre"))
	assert.Equal(t, "", errs.Mensaje("apodo"))
}

func TestValidarConservaPrimerError(t *testing.T) {
	// "ab" viola primero la longitud mínima; la regla de símbolos ya no corre
	esquema := NuevoEsquema().
		Campo("nombre", Longitud(3, 50), SinSimbolos())

	errs := esquema.Validar(Formulario{Campos: map[string]string{"nombre": "a!"}})

	assert.Equal(t, "Mínimo 3 caracteres", errs.Mensaje("nombre"))
}

func TestValidarRecortaEspacios(t *testing.T) {
	esquema := NuevoEsquema().Campo("nombre", Longitud(3, 50))

	errs := esquema.Validar(Formulario{Campos: map[string]string{"nombre": "   "}})

	assert.Equal(t, MensajeObligatorio, errs.Mensaje("nombre"))
}

func TestValidarEsIdempotente(t *testing.T) {
	esquema := NuevoEsquema().
		Campo("nombre", Longitud(3, 50)).
		Campo("correo", Correo()).
		Refinar(CamposIguales("clave", "confirmacion", "Las contraseñas no coinciden"))

	form := Formulario{Campos: map[string]string{
		"nombre":       "ab",
		"correo":       "malformado",
		"clave":        "secreta1",
		"confirmacion": "secreta2",
	}}

	primera := esquema.Validar(form)
	segunda := esquema.Validar(form)

	assert.Equal(t, primera, segunda)
}

func TestRequeridoSi(t *testing.T) {
	esquema := NuevoEsquema().
		Campo("graduado", OpcionDe("Si", "No")).
		CampoOpcional("fecha_graduacion", FechaValida()).
		Refinar(RequeridoSi("graduado", "Si", "fecha_graduacion"))

	t.Run("condición activa exige el campo", func(t *testing.T) {
		errs := esquema.Validar(Formulario{Campos: map[string]string{"graduado": "Si"}})
		assert.Equal(t, MensajeObligatorio, errs.Mensaje("fecha_graduacion"))
	})

	t.Run("condición inactiva no exige nada", func(t *testing.T) {
		errs := esquema.Validar(Formulario{Campos: map[string]string{"graduado": "No"}})
		assert.True(t, errs.Valido())
	})
}

func TestCamposIguales(t *testing.T) {
	esquema := NuevoEsquema().
		Campo("password", Longitud(8, 64)).
		Campo("password_confirmation").
		Refinar(CamposIguales("password", "password_confirmation", "Las contraseñas no coinciden"))

	errs := esquema.Validar(Formulario{Campos: map[string]string{
		"password":              "secreta123",
		"password_confirmation": "secreta124",
	}})

	assert.Equal(t, "Las contraseñas no coinciden", errs.Mensaje("password_confirmation"))
	assert.Equal(t, "", errs.Mensaje("password"))
}

func TestValidarCamposSoloMiraElSubconjunto(t *testing.T) {
	esquema := NuevoEsquema().
		Campo("nombre", Longitud(3, 50)).
		Campo("correo", Correo()).
		Archivo("archivo", true, MIMEPdf).
		Refinar(CamposIguales("clave", "confirmacion", "Las contraseñas no coinciden"))

	errs := esquema.ValidarCampos(Formulario{Campos: map[string]string{
		"nombre": "Ana María",
	}}, "nombre")

	// correo, archivo y el refinamiento quedan fuera del subconjunto
	assert.True(t, errs.Valido())
}

func TestLimpiarVaciaRamaInactiva(t *testing.T) {
	esquema := NuevoEsquema().
		Campo("trabajo_actual", OpcionDe("Si", "No")).
		CampoOpcional("fecha_finalizacion", FechaValida()).
		LimpiarSi("trabajo_actual", "Si", "fecha_finalizacion")

	original := Formulario{Campos: map[string]string{
		"trabajo_actual":     "Si",
		"fecha_finalizacion": "2024-01-01",
	}}

	limpio := esquema.Limpiar(original)

	assert.Equal(t, "", limpio.Campos["fecha_finalizacion"])
	assert.Equal(t, "Si", limpio.Campos["trabajo_actual"])
	// El formulario original no se muta
	assert.Equal(t, "2024-01-01", original.Campos["fecha_finalizacion"])
}

func TestLimpiarRecortaValorDeCondicion(t *testing.T) {
	// La condición se evalúa sobre el valor recortado, igual que Validar
	esquema := NuevoEsquema().
		Campo("trabajo_actual", OpcionDe("Si", "No")).
		CampoOpcional("fecha_finalizacion", FechaValida()).
		LimpiarSi("trabajo_actual", "Si", "fecha_finalizacion")

	limpio := esquema.Limpiar(Formulario{Campos: map[string]string{
		"trabajo_actual":     "Si ",
		"fecha_finalizacion": "2024-01-01",
	}})

	assert.Equal(t, "", limpio.Campos["fecha_finalizacion"])
}

func TestArchivoObligatorio(t *testing.T) {
	esquema := NuevoEsquema().Archivo("archivo", true, MIMEPdf)

	errs := esquema.Validar(Formulario{Campos: map[string]string{}})

	assert.Equal(t, "Debe adjuntar un archivo", errs.Mensaje("archivo"))
}

func TestArchivoTamano(t *testing.T) {
	esquema := NuevoEsquema().Archivo("archivo", true, MIMEPdf)

	testCases := []struct {
		name   string
		tamano int64
		want   string
	}{
		{name: "exactamente 2MB pasa", tamano: 2 * 1024 * 1024, want: ""},
		{name: "un byte de más falla", tamano: 2*1024*1024 + 1, want: "Archivo demasiado grande (máx 2MB)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := esquema.Validar(Formulario{
				Campos: map[string]string{},
				Archivos: map[string][]Archivo{
					"archivo": {{Nombre: "doc.pdf", Tamano: tc.tamano, TipoMIME: MIMEPdf}},
				},
			})
			assert.Equal(t, tc.want, errs.Mensaje("archivo"))
		})
	}
}

func TestArchivoTipoMIME(t *testing.T) {
	esquema := NuevoEsquema().Archivo("archivo", true, MIMEPdf)

	errs := esquema.Validar(Formulario{
		Campos: map[string]string{},
		Archivos: map[string][]Archivo{
			"archivo": {{Nombre: "foto.png", Tamano: 1024, TipoMIME: MIMEPng}},
		},
	})

	assert.Equal(t, "Formato de archivo inválido", errs.Mensaje("archivo"))
}

func TestArchivoOpcional(t *testing.T) {
	esquema := NuevoEsquema().Archivo("archivo", false, MIMEPdf, MIMEPng, MIMEJpeg)

	t.Run("ausente pasa", func(t *testing.T) {
		errs := esquema.Validar(Formulario{Campos: map[string]string{}})
		assert.True(t, errs.Valido())
	})

	t.Run("presente se valida igual", func(t *testing.T) {
		errs := esquema.Validar(Formulario{
			Campos: map[string]string{},
			Archivos: map[string][]Archivo{
				"archivo": {{Nombre: "v.mp4", Tamano: 1024, TipoMIME: "video/mp4"}},
			},
		})
		assert.Equal(t, "Formato de archivo inválido", errs.Mensaje("archivo"))
	})
}

func TestErroresAgregarConservaPrimerMensaje(t *testing.T) {
	errs := make(Errores)
	errs.Agregar("campo", "primero")
	errs.Agregar("campo", "segundo")

	assert.Equal(t, "primero", errs.Mensaje("campo"))
}

func TestErroresAError(t *testing.T) {
	t.Run("sin errores retorna nil", func(t *testing.T) {
		errs := make(Errores)
		assert.Nil(t, errs.AError())
	})

	t.Run("con errores expone los campos como detalles", func(t *testing.T) {
		errs := make(Errores)
		errs.Agregar("nombre", MensajeObligatorio)

		err := errs.AError()
		assert.NotNil(t, err)
		assert.Equal(t, MensajeObligatorio, err.Details["nombre"])
	})
}
