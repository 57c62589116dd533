package services

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// mimeToType maps sniffed MIME types to the file types the extractor handles.
var mimeToType = map[string]string{
	"application/pdf": "pdf",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
	"image/jpeg": "jpg",
	"image/png":  "png",
}

type FileTypeDetector interface {
	DetectType(path, originalName string) string
}

type fileTypeDetector struct{}

func NewFileTypeDetector() FileTypeDetector {
	return &fileTypeDetector{}
}

// DetectType sniffs the file's magic bytes and returns one of pdf, docx, jpg
// or png. When sniffing fails or is inconclusive it falls back to the
// original filename's extension, lower-cased and without the dot.
func (d *fileTypeDetector) DetectType(path, originalName string) string {
	mtype, err := mimetype.DetectFile(path)
	if err == nil {
		for mime, fileType := range mimeToType {
			if mtype.Is(mime) {
				return fileType
			}
		}
	}

	return strings.ToLower(strings.TrimPrefix(filepath.Ext(originalName), "."))
}
