package filemagic

// Canonical extensions of every supported format
const (
	ExtAMR    = "amr"
	ExtAR     = "ar"
	ExtAVI    = "avi"
	ExtBMP    = "bmp"
	ExtBZ2    = "bz2"
	ExtCAB    = "cab"
	ExtCR2    = "cr2"
	ExtCRX    = "crx"
	ExtDEB    = "deb"
	ExtDMG    = "dmg"
	ExtEOT    = "eot"
	ExtEPUB   = "epub"
	ExtEXE    = "exe"
	ExtFLAC   = "flac"
	ExtFLIF   = "flif"
	ExtFLV    = "flv"
	ExtGIF    = "gif"
	ExtGZ     = "gz"
	ExtICO    = "ico"
	ExtJPG    = "jpg"
	ExtJXR    = "jxr"
	ExtLZ     = "lz"
	ExtM4A    = "m4a"
	ExtM4V    = "m4v"
	ExtMID    = "mid"
	ExtMKV    = "mkv"
	ExtMOV    = "mov"
	ExtMP3    = "mp3"
	ExtMP4    = "mp4"
	ExtMPG    = "mpg"
	ExtMSI    = "msi"
	ExtMXF    = "mxf"
	ExtNES    = "nes"
	ExtOGG    = "ogg"
	ExtOPUS   = "opus"
	ExtOTF    = "otf"
	ExtPDF    = "pdf"
	ExtPNG    = "png"
	ExtPS     = "ps"
	ExtPSD    = "psd"
	ExtRAR    = "rar"
	ExtRPM    = "rpm"
	ExtRTF    = "rtf"
	ExtSevenZ = "7z"
	ExtSQLite = "sqlite"
	ExtSWF    = "swf"
	ExtTAR    = "tar"
	ExtTIF    = "tif"
	ExtTTF    = "ttf"
	ExtWAV    = "wav"
	ExtWEBM   = "webm"
	ExtWEBP   = "webp"
	ExtWMV    = "wmv"
	ExtWOFF   = "woff"
	ExtWOFF2  = "woff2"
	ExtXPI    = "xpi"
	ExtXZ     = "xz"
	ExtZ      = "Z"
	ExtZIP    = "zip"
)

var (
	tiffLE    = []byte{0x49, 0x49, 0x2A, 0x00}
	tiffBE    = []byte{0x4D, 0x4D, 0x00, 0x2A}
	zipLocal  = []byte{0x50, 0x4B, 0x03, 0x04}
	oggMagic  = []byte("OggS")
	riffMagic = []byte("RIFF")
	ftypBox   = []byte("ftyp")
	arMagic   = []byte("!<arch>")

	woffFlavorTrueType = []byte{0x00, 0x01, 0x00, 0x00}
	woffFlavorCFF      = []byte("OTTO")
)

// signatures is the ordered signature table. The first matching entry wins,
// so more specific rules must precede the general rules that would shadow
// them.
var signatures = []Signature{
	// Images
	{Extension: ExtJPG, MIME: "image/jpeg", MinLength: 3, match: prefix(0xFF, 0xD8, 0xFF)},
	{Extension: ExtPNG, MIME: "image/png", MinLength: 4, match: prefix(0x89, 0x50, 0x4E, 0x47)},
	{Extension: ExtGIF, MIME: "image/gif", MinLength: 3, match: prefix('G', 'I', 'F')},
	{Extension: ExtWEBP, MIME: "image/webp", MinLength: 12, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 8, []byte("WEBP"))
	}},
	{Extension: ExtFLIF, MIME: "image/flif", MinLength: 4, match: prefix('F', 'L', 'I', 'F')},
	// CR2 is a TIFF with a marker at 8; keep it ahead of tif.
	{Extension: ExtCR2, MIME: "image/x-canon-cr2", MinLength: 10, match: func(b []byte, _ ByteSource) bool {
		return (hasAt(b, 0, tiffLE) || hasAt(b, 0, tiffBE)) && hasAt(b, 8, []byte("CR"))
	}},
	{Extension: ExtTIF, MIME: "image/tiff", MinLength: 4, match: anyPrefix(tiffLE, tiffBE)},
	{Extension: ExtBMP, MIME: "image/bmp", MinLength: 2, match: prefix('B', 'M')},
	{Extension: ExtJXR, MIME: "image/vnd.ms-photo", MinLength: 3, match: prefix(0x49, 0x49, 0xBC)},
	{Extension: ExtPSD, MIME: "image/vnd.adobe.photoshop", MinLength: 4, match: prefix('8', 'B', 'P', 'S')},

	// Archives. EPUB and XPI are ZIP files and must come before zip.
	{Extension: ExtEPUB, MIME: "application/epub+zip", MinLength: 58, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, zipLocal) && hasAt(b, 30, []byte("mimetypeapplication/epub+zip"))
	}},
	// Assumes a signed .xpi from addons.mozilla.org.
	{Extension: ExtXPI, MIME: "application/x-xpinstall", MinLength: 50, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, zipLocal) && hasAt(b, 30, []byte("META-INF/mozilla.rsa"))
	}},
	{Extension: ExtZIP, MIME: "application/zip", MinLength: 4, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, []byte{0x50, 0x4B}) &&
			oneOf(at(b, 2), 0x03, 0x05, 0x07) &&
			oneOf(at(b, 3), 0x04, 0x06, 0x08)
	}},
	{Extension: ExtTAR, MIME: "application/x-tar", MinLength: 262, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 257, []byte("ustar"))
	}},
	{Extension: ExtRAR, MIME: "application/x-rar-compressed", MinLength: 7, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, []byte{'R', 'a', 'r', '!', 0x1A, 0x07}) && oneOf(at(b, 6), 0x00, 0x01)
	}},
	{Extension: ExtGZ, MIME: "application/gzip", MinLength: 3, match: prefix(0x1F, 0x8B, 0x08)},
	{Extension: ExtBZ2, MIME: "application/x-bzip2", MinLength: 3, match: prefix('B', 'Z', 'h')},
	{Extension: ExtSevenZ, MIME: "application/x-7z-compressed", MinLength: 6, match: prefix('7', 'z', 0xBC, 0xAF, 0x27, 0x1C)},
	{Extension: ExtDMG, MIME: "application/x-apple-diskimage", MinLength: 2, match: prefix(0x78, 0x01)},

	// Video and audio
	{Extension: ExtMP4, MIME: "video/mp4", MinLength: 28, match: matchMP4},
	{Extension: ExtM4V, MIME: "video/x-m4v", MinLength: 11, match: prefix(0x00, 0x00, 0x00, 0x1C, 'f', 't', 'y', 'p', 'M', '4', 'V')},
	{Extension: ExtMID, MIME: "audio/midi", MinLength: 4, match: prefix('M', 'T', 'h', 'd')},
	{Extension: ExtMKV, MIME: "video/x-matroska", MinLength: 4, match: ebmlDocType("matroska")},
	{Extension: ExtWEBM, MIME: "video/webm", MinLength: 4, match: ebmlDocType("webm")},
	{Extension: ExtMOV, MIME: "video/quicktime", MinLength: 8, match: prefix(0x00, 0x00, 0x00, 0x14, 'f', 't', 'y', 'p')},
	{Extension: ExtAVI, MIME: "video/x-msvideo", MinLength: 11, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, riffMagic) && hasAt(b, 8, []byte("AVI"))
	}},
	{Extension: ExtWMV, MIME: "video/x-ms-wmv", MinLength: 10, match: prefix(0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11, 0xA6, 0xD9)},
	// MPEG pack and sequence headers: 00 00 01 Bx.
	{Extension: ExtMPG, MIME: "video/mpeg", MinLength: 4, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, []byte{0x00, 0x00, 0x01}) && at(b, 3) >= 0xB0 && at(b, 3) <= 0xBF
	}},
	{Extension: ExtMP3, MIME: "audio/mpeg", MinLength: 3, match: anyPrefix([]byte("ID3"), []byte{0xFF, 0xFB})},
	{Extension: ExtM4A, MIME: "audio/m4a", MinLength: 11, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, []byte("M4A ")) || hasAt(b, 4, []byte("ftypM4A"))
	}},
	// Opus lives in an Ogg container; keep it ahead of ogg.
	{Extension: ExtOPUS, MIME: "audio/opus", MinLength: 36, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, oggMagic) && hasAt(b, 28, []byte("OpusHead"))
	}},
	{Extension: ExtOGG, MIME: "audio/ogg", MinLength: 4, match: prefix('O', 'g', 'g', 'S')},
	{Extension: ExtFLAC, MIME: "audio/x-flac", MinLength: 4, match: prefix('f', 'L', 'a', 'C')},
	{Extension: ExtWAV, MIME: "audio/x-wav", MinLength: 12, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, riffMagic) && hasAt(b, 8, []byte("WAVE"))
	}},
	{Extension: ExtAMR, MIME: "audio/amr", MinLength: 6, match: prefix('#', '!', 'A', 'M', 'R', '\n')},

	// Documents and executables
	{Extension: ExtPDF, MIME: "application/pdf", MinLength: 4, match: prefix('%', 'P', 'D', 'F')},
	{Extension: ExtEXE, MIME: "application/x-msdownload", MinLength: 2, match: prefix('M', 'Z')},
	{Extension: ExtSWF, MIME: "application/x-shockwave-flash", MinLength: 3, match: func(b []byte, _ ByteSource) bool {
		return oneOf(at(b, 0), 'C', 'F') && hasAt(b, 1, []byte("WS"))
	}},
	{Extension: ExtRTF, MIME: "application/rtf", MinLength: 5, match: prefix('{', '\\', 'r', 't', 'f')},

	// Fonts
	{Extension: ExtWOFF, MIME: "application/font-woff", MinLength: 8, match: woff('F')},
	{Extension: ExtWOFF2, MIME: "application/font-woff", MinLength: 8, match: woff('2')},
	// EOT version at 8..10 and the "LP" magic at 34..35.
	{Extension: ExtEOT, MIME: "application/octet-stream", MinLength: 36, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 34, []byte("LP")) &&
			(hasAt(b, 8, []byte{0x00, 0x00, 0x01}) ||
				hasAt(b, 8, []byte{0x01, 0x00, 0x02}) ||
				hasAt(b, 8, []byte{0x02, 0x00, 0x02}))
	}},
	{Extension: ExtTTF, MIME: "application/font-sfnt", MinLength: 5, match: prefix(0x00, 0x01, 0x00, 0x00, 0x00)},
	{Extension: ExtOTF, MIME: "application/font-sfnt", MinLength: 5, match: prefix('O', 'T', 'T', 'O', 0x00)},

	// Everything else
	{Extension: ExtICO, MIME: "image/x-icon", MinLength: 4, match: prefix(0x00, 0x00, 0x01, 0x00)},
	{Extension: ExtFLV, MIME: "video/x-flv", MinLength: 4, match: prefix('F', 'L', 'V', 0x01)},
	{Extension: ExtPS, MIME: "application/postscript", MinLength: 2, match: prefix('%', '!')},
	{Extension: ExtXZ, MIME: "application/x-xz", MinLength: 6, match: prefix(0xFD, '7', 'z', 'X', 'Z', 0x00)},
	{Extension: ExtSQLite, MIME: "application/x-sqlite3", MinLength: 4, match: prefix('S', 'Q', 'L', 'i')},
	{Extension: ExtNES, MIME: "application/x-nintendo-nes-rom", MinLength: 4, match: prefix('N', 'E', 'S', 0x1A)},
	{Extension: ExtCRX, MIME: "application/x-google-chrome-extension", MinLength: 4, match: prefix('C', 'r', '2', '4')},
	{Extension: ExtCAB, MIME: "application/vnd.ms-cab-compressed", MinLength: 4, match: anyPrefix([]byte("MSCF"), []byte("ISc("))},
	// A .deb is an ar archive whose first member is debian-binary.
	{Extension: ExtDEB, MIME: "application/x-deb", MinLength: 21, match: prefix('!', '<', 'a', 'r', 'c', 'h', '>', '\n',
		'd', 'e', 'b', 'i', 'a', 'n', '-', 'b', 'i', 'n', 'a', 'r', 'y')},
	{Extension: ExtAR, MIME: "application/x-unix-archive", MinLength: 7, match: func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, arMagic)
	}},
	{Extension: ExtRPM, MIME: "application/x-rpm", MinLength: 4, match: prefix(0xED, 0xAB, 0xEE, 0xDB)},
	{Extension: ExtZ, MIME: "application/x-compress", MinLength: 2, match: anyPrefix([]byte{0x1F, 0xA0}, []byte{0x1F, 0x9D})},
	{Extension: ExtLZ, MIME: "application/x-lzip", MinLength: 4, match: prefix('L', 'Z', 'I', 'P')},
	{Extension: ExtMSI, MIME: "application/x-msi", MinLength: 8, match: prefix(0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1)},
	{Extension: ExtMXF, MIME: "application/mxf", MinLength: 14, match: prefix(0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01, 0x0D, 0x01, 0x02, 0x01, 0x01, 0x02)},
}

// matchMP4 accepts the ftyp layouts seen in the wild for MP4 and 3GP.
func matchMP4(b []byte, _ ByteSource) bool {
	switch {
	case hasAt(b, 0, []byte{0x00, 0x00, 0x00}) && oneOf(at(b, 3), 0x18, 0x20) && hasAt(b, 4, ftypBox):
		return true
	case hasAt(b, 0, []byte("3gp5")):
		return true
	}

	if !hasAt(b, 0, []byte{0x00, 0x00, 0x00, 0x1C, 'f', 't', 'y', 'p'}) {
		return false
	}
	switch {
	case hasAt(b, 8, []byte("mp42")) && hasAt(b, 16, []byte("mp41mp42isom")):
		return true
	case hasAt(b, 8, []byte("isom")):
		return true
	case hasAt(b, 8, []byte{'m', 'p', '4', '2', 0x00, 0x00, 0x00, 0x00}):
		return true
	}
	return false
}

// woff matches "wOF" followed by the version byte and a TrueType or CFF flavor.
func woff(version byte) func([]byte, ByteSource) bool {
	return func(b []byte, _ ByteSource) bool {
		return hasAt(b, 0, []byte{'w', 'O', 'F', version}) &&
			(hasAt(b, 4, woffFlavorTrueType) || hasAt(b, 4, woffFlavorCFF))
	}
}

// All returns the signature table in match order.
func All() []Signature {
	out := make([]Signature, len(signatures))
	copy(out, signatures)
	return out
}

// ByExtension returns the signature with the given canonical extension.
func ByExtension(ext string) (Signature, bool) {
	for _, sig := range signatures {
		if sig.Extension == ext {
			return sig, true
		}
	}
	return Signature{}, false
}

// ByMIME returns every signature reporting the given MIME type, in table
// order. Several formats share a MIME type (woff and woff2, ttf and otf).
func ByMIME(mime string) []Signature {
	var out []Signature
	for _, sig := range signatures {
		if sig.MIME == mime {
			out = append(out, sig)
		}
	}
	return out
}
