package model

import (
	"path/filepath"
	"strings"
)

// DocumentKind is the closed set of upload formats the service knows about.
type DocumentKind string

const (
	KindPDF     DocumentKind = "pdf"
	KindDOCX    DocumentKind = "docx"
	KindTXT     DocumentKind = "txt"
	KindUnknown DocumentKind = "unknown"
)

// KindFromFilename derives the document kind from the extension of a client-supplied filename.
// Matching is case-insensitive; anything outside pdf/docx/txt is KindUnknown.
func KindFromFilename(name string) DocumentKind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch DocumentKind(ext) {
	case KindPDF, KindDOCX, KindTXT:
		return DocumentKind(ext)
	default:
		return KindUnknown
	}
}

// Supported reports whether the kind has an extraction routine.
func (k DocumentKind) Supported() bool {
	return k == KindPDF || k == KindDOCX || k == KindTXT
}

// UploadedDocument is a single request's upload, held in temp storage until the request ends.
type UploadedDocument struct {
	OriginalName    string
	Kind            DocumentKind
	RawBytes        []byte
	TempStoragePath string
}
