package filemagic

import "bytes"

// Signature describes one recognized file format.
type Signature struct {
	// Extension is the canonical file extension, without the leading dot.
	Extension string

	// MIME is the media type reported for the format.
	MIME string

	// MinLength is the number of prefix bytes required before the
	// predicate may run.
	MinLength int

	match func(prefix []byte, src ByteSource) bool
}

// Matches reports whether prefix (and, for formats that need it, src)
// satisfies the signature. Prefixes shorter than MinLength never match.
func (s Signature) Matches(prefix []byte, src ByteSource) bool {
	if s.match == nil || len(prefix) < s.MinLength {
		return false
	}
	return s.match(prefix, src)
}

// Is reports whether the signature's canonical extension is ext.
func (s Signature) Is(ext string) bool {
	return s.Extension == ext
}

// String returns "ext (mime)".
func (s Signature) String() string {
	if s.Extension == "" {
		return "unknown"
	}
	return s.Extension + " (" + s.MIME + ")"
}

// Category returns the broad category of the signature's MIME type.
func (s Signature) Category() string {
	return Category(s.MIME)
}

// IsImage returns true for image formats
func (s Signature) IsImage() bool { return s.Category() == CategoryImage }

// IsVideo returns true for video formats
func (s Signature) IsVideo() bool { return s.Category() == CategoryVideo }

// IsAudio returns true for audio formats
func (s Signature) IsAudio() bool { return s.Category() == CategoryAudio }

// IsArchive returns true for archive and compression formats
func (s Signature) IsArchive() bool { return s.Category() == CategoryArchive }

// IsExecutable returns true for executable formats
func (s Signature) IsExecutable() bool { return s.Category() == CategoryExecutable }

// ============================================================================
// Predicate building blocks
// ============================================================================

// at returns b[i], or zero when i is out of range.
func at(b []byte, i int) byte {
	if i < 0 || i >= len(b) {
		return 0
	}
	return b[i]
}

// hasAt reports whether b contains magic starting at offset.
func hasAt(b []byte, offset int, magic []byte) bool {
	if offset < 0 || offset+len(magic) > len(b) {
		return false
	}
	return bytes.Equal(b[offset:offset+len(magic)], magic)
}

// oneOf reports whether v equals any of the allowed values.
func oneOf(v byte, allowed ...byte) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// prefix builds a predicate matching magic at offset 0.
func prefix(magic ...byte) func([]byte, ByteSource) bool {
	return func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, magic)
	}
}

// anyPrefix builds a predicate matching any of the given magics at offset 0.
func anyPrefix(magics ...[]byte) func([]byte, ByteSource) bool {
	return func(b []byte, _ ByteSource) bool {
		for _, m := range magics {
			if hasAt(b, 0, m) {
				return true
			}
		}
		return false
	}
}
