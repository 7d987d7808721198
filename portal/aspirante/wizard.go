package aspirante

import "github.com/udistrital/unidoc_api/pkg/validez"

// TotalPasos del asistente de registro
const TotalPasos = 5

// camposPorPaso define qué campos posee cada paso del asistente:
// 1 nombres, 2 identificación, 3 demografía, 4 ubicación, 5 credenciales.
var camposPorPaso = [TotalPasos][]string{
	{CampoPrimerNombre, CampoSegundoNombre, CampoPrimerApellido, CampoSegundoApellido},
	{CampoTipoIdentificacion, CampoNumeroIdentificacion},
	{CampoFechaNacimiento, CampoGenero, CampoEstadoCivil, CampoTelefono},
	{CampoPaisID, CampoDepartamentoID, CampoMunicipioID},
	{CampoEmail, CampoPassword, CampoPasswordConfirmation},
}

// CamposDelPaso retorna los campos que valida un paso (1..5)
func CamposDelPaso(paso int) []string {
	if paso < 1 || paso > TotalPasos {
		return nil
	}
	return camposPorPaso[paso-1]
}

// RegistroWizard es la máquina de pasos del registro. Avanzar valida solo
// los campos del paso actual; el envío completo solo es alcanzable desde el
// último paso y revalida el esquema entero. Retroceder nunca pierde valores.
type RegistroWizard struct {
	esquema *validez.Esquema
	paso    int
	valores validez.Formulario
}

// NuevoRegistroWizard crea un asistente en el paso 1 sin valores
func NuevoRegistroWizard() *RegistroWizard {
	return &RegistroWizard{
		esquema: EsquemaRegistro(),
		paso:    1,
		valores: validez.Formulario{Campos: make(map[string]string)},
	}
}

// Paso retorna el paso actual (1..5)
func (w *RegistroWizard) Paso() int {
	return w.paso
}

// Valores retorna una copia de los valores acumulados
func (w *RegistroWizard) Valores() map[string]string {
	copia := make(map[string]string, len(w.valores.Campos))
	for campo, valor := range w.valores.Campos {
		copia[campo] = valor
	}
	return copia
}

// Avanzar incorpora los valores recibidos y valida los campos del paso
// actual. Si hay errores el paso no cambia; si no, el contador avanza
// (sin pasar del último paso).
func (w *RegistroWizard) Avanzar(campos map[string]string) validez.Errores {
	w.incorporar(campos)

	errs := w.esquema.ValidarCampos(w.valores, CamposDelPaso(w.paso)...)
	if !errs.Valido() {
		return errs
	}

	if w.paso < TotalPasos {
		w.paso++
	}
	return errs
}

// Retroceder vuelve al paso anterior conservando todos los valores
func (w *RegistroWizard) Retroceder() {
	if w.paso > 1 {
		w.paso--
	}
}

// EnElUltimoPaso indica si el envío completo ya es alcanzable
func (w *RegistroWizard) EnElUltimoPaso() bool {
	return w.paso == TotalPasos
}

// Enviar revalida el formulario COMPLETO. Solo es válido desde el último
// paso; en cualquier otro retorna ErrPasoInvalido.
func (w *RegistroWizard) Enviar(campos map[string]string) (validez.Formulario, validez.Errores, error) {
	if !w.EnElUltimoPaso() {
		return validez.Formulario{}, nil, ErrPasoInvalido().WithDetail("paso", w.paso)
	}

	w.incorporar(campos)

	errs := w.esquema.Validar(w.valores)
	if !errs.Valido() {
		return validez.Formulario{}, errs, nil
	}

	return w.valores, errs, nil
}

func (w *RegistroWizard) incorporar(campos map[string]string) {
	for campo, valor := range campos {
		w.valores.Campos[campo] = valor
	}
}
