package expediente

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

func TestTipoRegistroIsValid(t *testing.T) {
	for _, tipo := range []TipoRegistro{TipoEstudio, TipoExperiencia, TipoIdioma, TipoEps, TipoRut} {
		assert.True(t, tipo.IsValid())
	}
	assert.False(t, TipoRegistro("HOBBIES").IsValid())
	assert.False(t, TipoRegistro("estudio").IsValid())
}

func TestRegistroEsEditable(t *testing.T) {
	assert.True(t, (&Registro{Revision: RevisionPendiente}).EsEditable())
	assert.True(t, (&Registro{Revision: RevisionDevuelto}).EsEditable())
	assert.False(t, (&Registro{Revision: RevisionAprobado}).EsEditable())
	assert.False(t, (&Registro{Revision: RevisionRechazado}).EsEditable())
}

func TestRegistroPerteneceA(t *testing.T) {
	r := &Registro{AspiranteID: kernel.NewAspiranteID("asp-1")}

	assert.True(t, r.PerteneceA(kernel.NewAspiranteID("asp-1")))
	assert.False(t, r.PerteneceA(kernel.NewAspiranteID("asp-2")))
}

func TestRegistroRevision(t *testing.T) {
	t.Run("aprobar limpia la observación previa", func(t *testing.T) {
		r := &Registro{Revision: RevisionDevuelto, Observacion: "Falta el sello"}

		assert.NoError(t, r.Aprobar())
		assert.Equal(t, RevisionAprobado, r.Revision)
		assert.Equal(t, "", r.Observacion)
	})

	t.Run("rechazar conserva la observación", func(t *testing.T) {
		r := &Registro{Revision: RevisionPendiente}

		assert.NoError(t, r.Rechazar("Documento ilegible"))
		assert.Equal(t, RevisionRechazado, r.Revision)
		assert.Equal(t, "Documento ilegible", r.Observacion)
	})

	t.Run("devolver deja el registro editable", func(t *testing.T) {
		r := &Registro{Revision: RevisionPendiente}

		assert.NoError(t, r.Devolver("Adjunte el acta de grado"))
		assert.Equal(t, RevisionDevuelto, r.Revision)
		assert.True(t, r.EsEditable())
	})

	t.Run("un registro aprobado no se vuelve a revisar", func(t *testing.T) {
		r := &Registro{Revision: RevisionAprobado}

		assert.Error(t, r.Aprobar())
		assert.Error(t, r.Rechazar("tarde"))
		assert.Error(t, r.Devolver("tarde"))
		assert.Equal(t, RevisionAprobado, r.Revision)
	})

	t.Run("editar reabre la revisión", func(t *testing.T) {
		r := &Registro{Revision: RevisionDevuelto, Observacion: "Falta el sello"}

		r.ReabrirRevision()

		assert.Equal(t, RevisionPendiente, r.Revision)
		assert.Equal(t, "", r.Observacion)
	})
}
