// Package docinspect verifica que los PDF cargados al expediente realmente
// abran, y genera la miniatura de primera página que usa la revisión de
// Talento Humano.
package docinspect

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/gen2brain/go-fitz"
)

// Inspeccion es el resultado de inspeccionar un documento cargado
type Inspeccion struct {
	Paginas int `json:"paginas"`
}

// InspectPDF abre el PDF en memoria y cuenta sus páginas. Un PDF corrupto
// o vacío se rechaza aquí, después de pasar las validaciones de tamaño y
// tipo del formulario.
func InspectPDF(data []byte) (*Inspeccion, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	defer doc.Close()

	pages := doc.NumPage()
	if pages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	return &Inspeccion{Paginas: pages}, nil
}

// FirstPageThumbnail renders the first page as a JPEG for the review list
func FirstPageThumbnail(data []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("render first page: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}
