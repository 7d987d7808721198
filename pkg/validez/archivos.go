package validez

// MaxTamanoArchivo es el techo de 2 MiB para archivos adjuntos.
// Un archivo de exactamente este tamaño es aceptado.
const MaxTamanoArchivo = 2 * 1024 * 1024

// Tipos MIME aceptados por los formularios del portal
const (
	MIMEPdf  = "application/pdf"
	MIMEPng  = "image/png"
	MIMEJpeg = "image/jpeg"
)

// Archivo es el adjunto de un formulario: se valida antes de tocar
// cualquier almacenamiento.
type Archivo struct {
	Nombre   string `json:"nombre"`
	Tamano   int64  `json:"tamano"`
	TipoMIME string `json:"tipo_mime"`
}

type reglaArchivo struct {
	campo       string
	obligatorio bool
	tiposMIME   []string
}

func (r reglaArchivo) validar(f Formulario, errs Errores) {
	archivos := f.Archivos[r.campo]

	if len(archivos) == 0 {
		// La ausencia en modo actualización significa "conservar el archivo
		// ya cargado"; esa convención la hace cumplir el servicio, no el esquema.
		if r.obligatorio {
			errs.Agregar(r.campo, "Debe adjuntar un archivo")
		}
		return
	}

	archivo := archivos[0]

	if archivo.Tamano > MaxTamanoArchivo {
		errs.Agregar(r.campo, "Archivo demasiado grande (máx 2MB)")
	}

	permitido := false
	for _, tipo := range r.tiposMIME {
		if archivo.TipoMIME == tipo {
			permitido = true
			break
		}
	}
	if !permitido {
		errs.Agregar(r.campo, "Formato de archivo inválido")
	}
}
