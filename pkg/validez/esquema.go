package validez

import "strings"

// Modo distingue el esquema estricto de creación del relajado de edición.
// La única divergencia permitida entre ambos es la obligatoriedad del
// archivo adjunto; el resto de reglas es idéntico.
type Modo string

const (
	ModoCrear      Modo = "CREAR"
	ModoActualizar Modo = "ACTUALIZAR"
)

// Formulario es el registro plano que envía un formulario: valores de campo
// como cadenas y adjuntos como contenedores de cero o un archivo.
type Formulario struct {
	Campos   map[string]string    `json:"campos"`
	Archivos map[string][]Archivo `json:"archivos,omitempty"`
}

// Campo retorna el valor recortado de un campo
func (f Formulario) Campo(nombre string) string {
	return strings.TrimSpace(f.Campos[nombre])
}

// Refinamiento es una regla cruzada aplicada en una segunda pasada, sobre
// la forma ya validada campo a campo
type Refinamiento func(f Formulario, errs Errores)

type reglaCampo struct {
	nombre      string
	obligatorio bool
	reglas      []Regla
}

// Esquema es la definición declarativa de validación de una entidad
type Esquema struct {
	campos        []reglaCampo
	archivos      []reglaArchivo
	refinamientos []Refinamiento
	limpiezas     []limpieza
}

type limpieza struct {
	campoCondicion string
	valorCondicion string
	campos         []string
}

// NuevoEsquema crea un esquema vacío
func NuevoEsquema() *Esquema {
	return &Esquema{}
}

// Campo declara un campo obligatorio con sus reglas
func (e *Esquema) Campo(nombre string, reglas ...Regla) *Esquema {
	e.campos = append(e.campos, reglaCampo{nombre: nombre, obligatorio: true, reglas: reglas})
	return e
}

// CampoOpcional declara un campo cuyas reglas solo aplican si tiene valor
func (e *Esquema) CampoOpcional(nombre string, reglas ...Regla) *Esquema {
	e.campos = append(e.campos, reglaCampo{nombre: nombre, reglas: reglas})
	return e
}

// Archivo declara un adjunto con su lista de tipos MIME permitidos
func (e *Esquema) Archivo(nombre string, obligatorio bool, tiposMIME ...string) *Esquema {
	e.archivos = append(e.archivos, reglaArchivo{campo: nombre, obligatorio: obligatorio, tiposMIME: tiposMIME})
	return e
}

// Refinar agrega una regla cruzada de segunda pasada
func (e *Esquema) Refinar(refinamientos ...Refinamiento) *Esquema {
	e.refinamientos = append(e.refinamientos, refinamientos...)
	return e
}

// LimpiarSi declara campos que deben vaciarse cuando la condición se cumple
// (rama inversa de un RequeridoSi). Un valor presente en la rama inactiva es
// irrelevante para la validez; Limpiar lo descarta antes de persistir.
func (e *Esquema) LimpiarSi(campoCondicion, valorCondicion string, campos ...string) *Esquema {
	e.limpiezas = append(e.limpiezas, limpieza{campoCondicion, valorCondicion, campos})
	return e
}

// Validar aplica todas las reglas de campo y archivo, y luego los
// refinamientos cruzados. Función pura: validar dos veces el mismo
// formulario produce el mismo resultado.
func (e *Esquema) Validar(f Formulario) Errores {
	errs := make(Errores)

	// Primera pasada: reglas por campo
	for _, campo := range e.campos {
		valor := f.Campo(campo.nombre)

		if valor == "" {
			if campo.obligatorio {
				errs.Agregar(campo.nombre, MensajeObligatorio)
			}
			continue
		}

		for _, regla := range campo.reglas {
			if msg := regla(valor); msg != "" {
				errs.Agregar(campo.nombre, msg)
				break
			}
		}
	}

	for _, archivo := range e.archivos {
		archivo.validar(f, errs)
	}

	// Segunda pasada: reglas cruzadas sobre la forma ya validada
	for _, refinamiento := range e.refinamientos {
		refinamiento(f, errs)
	}

	return errs
}

// ValidarCampos aplica solo las reglas de los campos nombrados (una página
// del asistente de registro). Los refinamientos cruzados y los archivos no
// participan; esos corren en la validación completa del envío final.
func (e *Esquema) ValidarCampos(f Formulario, nombres ...string) Errores {
	errs := make(Errores)

	incluido := make(map[string]bool, len(nombres))
	for _, nombre := range nombres {
		incluido[nombre] = true
	}

	for _, campo := range e.campos {
		if !incluido[campo.nombre] {
			continue
		}

		valor := f.Campo(campo.nombre)
		if valor == "" {
			if campo.obligatorio {
				errs.Agregar(campo.nombre, MensajeObligatorio)
			}
			continue
		}

		for _, regla := range campo.reglas {
			if msg := regla(valor); msg != "" {
				errs.Agregar(campo.nombre, msg)
				break
			}
		}
	}

	return errs
}

// Limpiar retorna una copia del formulario con los campos de ramas
// inactivas vaciados. No muta el formulario recibido.
func (e *Esquema) Limpiar(f Formulario) Formulario {
	limpio := Formulario{
		Campos:   make(map[string]string, len(f.Campos)),
		Archivos: f.Archivos,
	}
	for nombre, valor := range f.Campos {
		limpio.Campos[nombre] = valor
	}

	for _, l := range e.limpiezas {
		if limpio.Campo(l.campoCondicion) == l.valorCondicion {
			for _, campo := range l.campos {
				limpio.Campos[campo] = ""
			}
		}
	}

	return limpio
}

// RequeridoSi exige campos solo cuando otro campo tiene cierto valor
// (p. ej. titulo_convalidado=Si exige fecha y resolución de convalidación)
func RequeridoSi(campoCondicion, valorCondicion string, campos ...string) Refinamiento {
	return func(f Formulario, errs Errores) {
		if f.Campo(campoCondicion) != valorCondicion {
			return
		}
		for _, campo := range campos {
			if f.Campo(campo) == "" {
				errs.Agregar(campo, MensajeObligatorio)
			}
		}
	}
}

// CamposIguales exige que dos campos coincidan; el error se adjunta al
// campo de confirmación
func CamposIguales(campo, confirmacion, mensaje string) Refinamiento {
	return func(f Formulario, errs Errores) {
		if f.Campo(campo) != f.Campo(confirmacion) {
			errs.Agregar(confirmacion, mensaje)
		}
	}
}
