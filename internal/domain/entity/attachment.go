package entity

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Ginebra-api/internal/domain"
)

// MaxAttachmentBytes tamaño máximo de un comprobante (16 MiB).
const MaxAttachmentBytes int64 = 16 << 20

// AttachmentKind tipo de entidad dueña del archivo; forma parte del nombre generado.
type AttachmentKind string

const (
	AttachmentBooking  AttachmentKind = "reserva"
	AttachmentContract AttachmentKind = "contrato"
	AttachmentCatalog  AttachmentKind = "catalogo"
)

// Attachment comprobante PDF opcional. Content solo se carga al descargar.
type Attachment struct {
	Name    string
	Size    int64
	Content []byte
}

// Present informa si hay archivo adjunto.
func (a Attachment) Present() bool { return a.Name != "" }

// ValidateAttachment comprueba extensión (.pdf), tamaño y que el contenido se haya leído
// completo; un archivo sin contenido nunca llega a guardarse. No inspecciona el formato.
func ValidateAttachment(filename string, size int64, content []byte) error {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return fmt.Errorf("%w: solo se permiten archivos PDF", domain.ErrAttachmentRejected)
	}
	if size <= 0 {
		return fmt.Errorf("%w: archivo vacío", domain.ErrAttachmentRejected)
	}
	if size > MaxAttachmentBytes {
		return fmt.Errorf("%w: el archivo supera 16 MB", domain.ErrAttachmentRejected)
	}
	if content == nil {
		return fmt.Errorf("%w: el archivo supera el límite de carga configurado", domain.ErrAttachmentRejected)
	}
	if int64(len(content)) != size {
		return fmt.Errorf("%w: el archivo llegó incompleto", domain.ErrAttachmentRejected)
	}
	return nil
}

// AttachmentName genera el nombre almacenado: {tipo}_{id}_{YYYYmmddHHMMSS}_{nombre seguro}.
func AttachmentName(kind AttachmentKind, id, filename string, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s_%s", kind, id, at.Format("20060102150405"), SafeFilename(filename))
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SafeFilename reduce el nombre a ASCII [A-Za-z0-9._-], sin rutas ni acentos.
func SafeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if folded, _, err := transform.String(stripMarks, name); err == nil {
		name = folded
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "archivo.pdf"
	}
	return out
}
