package utils

import "strings"

const pdfExtension = ".pdf"

// HasPDFExtension reports whether the uploaded filename carries the literal
// ".pdf" suffix. The check is case-sensitive on purpose: "X.PDF" is
// rejected.
func HasPDFExtension(filename string) bool {
	return strings.HasSuffix(filename, pdfExtension)
}

// MaterialIDFromFilename derives the store key for an uploaded file:
// trailing ".pdf" removed, spaces replaced with underscores. Different
// filenames can collide ("a b.pdf" and "a_b.pdf" both map to "a_b"); the
// later upload simply overwrites the earlier one.
func MaterialIDFromFilename(filename string) string {
	id := strings.TrimSuffix(filename, pdfExtension)
	return strings.ReplaceAll(id, " ", "_")
}
