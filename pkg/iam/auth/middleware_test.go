package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udistrital/unidoc_api/pkg/kernel"
)

func TestHasAnyScope(t *testing.T) {
	testCases := []struct {
		name    string
		granted []string
		wanted  []string
		want    bool
	}{
		{name: "coincidencia exacta", granted: []string{ScopeConvocatoriasRead}, wanted: []string{ScopeConvocatoriasRead}, want: true},
		{name: "comodín global", granted: []string{ScopeAll}, wanted: []string{ScopeContratacionesWrite}, want: true},
		{name: "comodín de familia cubre la familia", granted: []string{ScopeExpedientesAll}, wanted: []string{ScopeExpedientesRevisar}, want: true},
		{name: "comodín de familia no cruza familias", granted: []string{ScopeExpedientesAll}, wanted: []string{ScopeContratacionesWrite}, want: false},
		{name: "sin coincidencia", granted: []string{ScopeConvocatoriasRead}, wanted: []string{ScopeConvocatoriasWrite}, want: false},
		{name: "basta una de varias", granted: []string{ScopeExpedientesPropio}, wanted: []string{ScopeExpedientesRead, ScopeExpedientesPropio}, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := &AuthContext{Scopes: tc.granted}
			assert.Equal(t, tc.want, ctx.HasAnyScope(tc.wanted...))
		})
	}
}

func TestScopesForRol(t *testing.T) {
	aspirante := &AuthContext{Scopes: ScopesForRol(kernel.RolAspirante)}
	assert.True(t, aspirante.HasAnyScope(ScopeExpedientesPropio))
	assert.False(t, aspirante.HasAnyScope(ScopeExpedientesRevisar))

	hr := &AuthContext{Scopes: ScopesForRol(kernel.RolTalentoHumano)}
	assert.True(t, hr.HasAnyScope(ScopeExpedientesRevisar))
	assert.True(t, hr.HasAnyScope(ScopeContratacionesWrite))

	assert.Nil(t, ScopesForRol(kernel.Rol("DESCONOCIDO")))
}
