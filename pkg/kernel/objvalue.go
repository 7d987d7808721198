package kernel

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

type Nombre string

type Telefono string

// Rol es el rol de portal resuelto una vez por sesión a partir del token
type Rol string

const (
	RolAspirante     Rol = "ASPIRANTE"
	RolDocente       Rol = "DOCENTE"
	RolTalentoHumano Rol = "TALENTO_HUMANO"
)

// IsValid valida que el rol sea uno de los conocidos
func (r Rol) IsValid() bool {
	return r == RolAspirante || r == RolDocente || r == RolTalentoHumano
}

// EsPostulante indica si el rol diligencia su propio expediente
func (r Rol) EsPostulante() bool {
	return r == RolAspirante || r == RolDocente
}

// TipoIdentificacion tipos de documento de identidad en Colombia
type TipoIdentificacion string

const (
	// TipoIdentificacionCC - Cédula de Ciudadanía
	TipoIdentificacionCC TipoIdentificacion = "CC"

	// TipoIdentificacionCE - Cédula de Extranjería
	TipoIdentificacionCE TipoIdentificacion = "CE"

	// TipoIdentificacionTI - Tarjeta de Identidad
	TipoIdentificacionTI TipoIdentificacion = "TI"

	// TipoIdentificacionPasaporte - Pasaporte
	TipoIdentificacionPasaporte TipoIdentificacion = "PASAPORTE"
)

// Identificacion representa un documento de identidad
type Identificacion struct {
	Tipo   TipoIdentificacion `json:"tipo"`
	Numero string             `json:"numero"`
}

// IsValid valida el formato del documento según su tipo
func (i Identificacion) IsValid() bool {
	switch i.Tipo {
	case TipoIdentificacionCC:
		// Cédula: 6-10 dígitos
		return len(i.Numero) >= 6 && len(i.Numero) <= 10 && isNumeric(i.Numero)

	case TipoIdentificacionCE:
		// Cédula de extranjería: 6-7 dígitos
		return len(i.Numero) >= 6 && len(i.Numero) <= 7 && isNumeric(i.Numero)

	case TipoIdentificacionTI:
		// Tarjeta de identidad: 10-11 dígitos
		return len(i.Numero) >= 10 && len(i.Numero) <= 11 && isNumeric(i.Numero)

	case TipoIdentificacionPasaporte:
		// Pasaporte: formato variable según país, 6-12 caracteres alfanuméricos
		return len(i.Numero) >= 6 && len(i.Numero) <= 12

	default:
		return false
	}
}

// GetDisplayName retorna el nombre legible del tipo de documento
func (t TipoIdentificacion) GetDisplayName() string {
	switch t {
	case TipoIdentificacionCC:
		return "Cédula de Ciudadanía"
	case TipoIdentificacionCE:
		return "Cédula de Extranjería"
	case TipoIdentificacionTI:
		return "Tarjeta de Identidad"
	case TipoIdentificacionPasaporte:
		return "Pasaporte"
	default:
		return "Desconocido"
	}
}

// Helper function
func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type BucketURL string
