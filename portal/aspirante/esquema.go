package aspirante

import "github.com/udistrital/unidoc_api/pkg/validez"

// Campos del formulario de registro
const (
	CampoPrimerNombre         = "primer_nombre"
	CampoSegundoNombre        = "segundo_nombre"
	CampoPrimerApellido       = "primer_apellido"
	CampoSegundoApellido      = "segundo_apellido"
	CampoTipoIdentificacion   = "tipo_identificacion"
	CampoNumeroIdentificacion = "numero_identificacion"
	CampoFechaNacimiento      = "fecha_nacimiento"
	CampoGenero               = "genero"
	CampoEstadoCivil          = "estado_civil"
	CampoTelefono             = "telefono"
	CampoPaisID               = "pais_id"
	CampoDepartamentoID       = "departamento_id"
	CampoMunicipioID          = "municipio_id"
	CampoEmail                = "email"
	CampoPassword             = "password"
	CampoPasswordConfirmation = "password_confirmation"
)

// EsquemaRegistro valida el formulario completo de registro. La fecha de
// nacimiento debe ser estrictamente anterior a hoy y la contraseña debe
// coincidir con su confirmación; ese error se adjunta a la confirmación.
func EsquemaRegistro() *validez.Esquema {
	return validez.NuevoEsquema().
		Campo(CampoPrimerNombre, validez.Longitud(2, 50), validez.SinSimbolos()).
		CampoOpcional(CampoSegundoNombre, validez.Longitud(2, 50), validez.SinSimbolos()).
		Campo(CampoPrimerApellido, validez.Longitud(2, 50), validez.SinSimbolos()).
		CampoOpcional(CampoSegundoApellido, validez.Longitud(2, 50), validez.SinSimbolos()).
		Campo(CampoTipoIdentificacion, validez.OpcionDe("CC", "CE", "TI", "PASAPORTE")).
		// numero_identificacion se valida como cadena numérica, no como
		// número coercionado; cada entidad conserva su tipo declarado.
		Campo(CampoNumeroIdentificacion, validez.Longitud(6, 12), validez.Numerico()).
		Campo(CampoFechaNacimiento, validez.FechaPasada()).
		Campo(CampoGenero, validez.OpcionDe(
			string(GeneroMasculino), string(GeneroFemenino), string(GeneroOtro),
		)).
		Campo(CampoEstadoCivil, validez.OpcionDe(
			string(EstadoCivilSoltero), string(EstadoCivilCasado), string(EstadoCivilUnionLibre),
			string(EstadoCivilDivorciado), string(EstadoCivilViudo),
		)).
		Campo(CampoTelefono, validez.Longitud(7, 10), validez.Numerico()).
		Campo(CampoPaisID, validez.EnteroPositivo()).
		Campo(CampoDepartamentoID, validez.EnteroPositivo()).
		Campo(CampoMunicipioID, validez.EnteroPositivo()).
		Campo(CampoEmail, validez.Correo()).
		Campo(CampoPassword, validez.Longitud(8, 64)).
		Campo(CampoPasswordConfirmation).
		Refinar(validez.CamposIguales(
			CampoPassword, CampoPasswordConfirmation, "Las contraseñas no coinciden",
		))
}
