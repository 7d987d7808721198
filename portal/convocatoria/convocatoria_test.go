package convocatoria

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvocatoriaTransiciones(t *testing.T) {
	testCases := []struct {
		name       string
		estado     EstadoConvocatoria
		transicion func(*Convocatoria) error
		wantErr    bool
		wantEstado EstadoConvocatoria
	}{
		{name: "cerrar abierta", estado: EstadoAbierta, transicion: (*Convocatoria).Cerrar, wantEstado: EstadoCerrada},
		{name: "cerrar cerrada falla", estado: EstadoCerrada, transicion: (*Convocatoria).Cerrar, wantErr: true},
		{name: "cerrar finalizada falla", estado: EstadoFinalizada, transicion: (*Convocatoria).Cerrar, wantErr: true},
		{name: "reabrir cerrada", estado: EstadoCerrada, transicion: (*Convocatoria).Reabrir, wantEstado: EstadoAbierta},
		{name: "reabrir abierta falla", estado: EstadoAbierta, transicion: (*Convocatoria).Reabrir, wantErr: true},
		{name: "reabrir finalizada falla", estado: EstadoFinalizada, transicion: (*Convocatoria).Reabrir, wantErr: true},
		{name: "finalizar abierta", estado: EstadoAbierta, transicion: (*Convocatoria).Finalizar, wantEstado: EstadoFinalizada},
		{name: "finalizar cerrada", estado: EstadoCerrada, transicion: (*Convocatoria).Finalizar, wantEstado: EstadoFinalizada},
		{name: "finalizar finalizada falla", estado: EstadoFinalizada, transicion: (*Convocatoria).Finalizar, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Convocatoria{Estado: tc.estado}

			err := tc.transicion(c)

			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tc.estado, c.Estado)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantEstado, c.Estado)
		})
	}
}

func TestAdmitePostulaciones(t *testing.T) {
	cierre := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	c := &Convocatoria{Estado: EstadoAbierta, FechaCierre: cierre}

	assert.True(t, c.AdmitePostulaciones(cierre.AddDate(0, 0, -1)))
	assert.True(t, c.AdmitePostulaciones(cierre), "el día del cierre aún admite envíos")
	assert.False(t, c.AdmitePostulaciones(cierre.Add(time.Hour)))

	cerrada := &Convocatoria{Estado: EstadoCerrada, FechaCierre: cierre}
	assert.False(t, cerrada.AdmitePostulaciones(cierre.AddDate(0, 0, -1)))
}

func TestEsEditable(t *testing.T) {
	assert.True(t, (&Convocatoria{Estado: EstadoAbierta}).EsEditable())
	assert.True(t, (&Convocatoria{Estado: EstadoCerrada}).EsEditable())
	assert.False(t, (&Convocatoria{Estado: EstadoFinalizada}).EsEditable())
}
