package filemagic

import "bytes"

const (
	// PrefixSize is the number of leading bytes the matcher inspects.
	PrefixSize = 262

	// ExtendedWindowSize is the number of bytes past the EBML magic that
	// are scanned for the DocType element.
	ExtendedWindowSize = 4096

	// MaxReadSize is the largest prefix any signature can request.
	MaxReadSize = 4 + ExtendedWindowSize
)

var (
	ebmlMagic     = []byte{0x1A, 0x45, 0xDF, 0xA3}
	ebmlDocTypeID = []byte{0x42, 0x82}
)

// ebmlDocType builds the predicate shared by Matroska and WebM. Both start
// with the EBML magic and differ only in the DocType string, which can sit
// anywhere in the header, so the predicate pulls an extended window from
// the source.
//
// The DocType payload is assumed to start three bytes after the element ID
// (two ID bytes plus a one-byte size), which holds for the headers muxers
// actually write but is not a general EBML vint decode.
func ebmlDocType(docType string) func([]byte, ByteSource) bool {
	want := []byte(docType)
	return func(b []byte, src ByteSource) bool {
		if !hasAt(b, 0, ebmlMagic) || src == nil {
			return false
		}

		data := src.ReadPrefix(MaxReadSize)
		if len(data) > MaxReadSize {
			data = data[:MaxReadSize]
		}
		if len(data) <= len(ebmlMagic) {
			return false
		}
		window := data[len(ebmlMagic):]

		idPos := bytes.Index(window, ebmlDocTypeID)
		if idPos < 0 {
			return false
		}

		return hasAt(window, idPos+3, want)
	}
}
