package filemagic

import "strings"

// Categories returned by Category
const (
	CategoryImage      = "image"
	CategoryVideo      = "video"
	CategoryAudio      = "audio"
	CategoryText       = "text"
	CategoryFont       = "font"
	CategoryArchive    = "archive"
	CategoryDocument   = "document"
	CategoryExecutable = "executable"
	CategoryOther      = "other"
)

var executableMIMEs = map[string]bool{
	"application/x-msdownload":    true,
	"application/x-msdos-program": true,
	"application/x-executable":    true,
	"application/x-mach-binary":   true,
	"application/x-sharedlib":     true,
	"application/x-dosexec":       true,
	"application/x-msi":           true,
}

// archiveMIMEs lists archive types whose names the substring checks in
// Category would miss.
var archiveMIMEs = map[string]bool{
	"application/x-xz":                      true,
	"application/x-lzip":                    true,
	"application/x-compress":                true,
	"application/x-deb":                     true,
	"application/x-rpm":                     true,
	"application/x-unix-archive":            true,
	"application/vnd.ms-cab-compressed":     true,
	"application/x-apple-diskimage":         true,
	"application/x-google-chrome-extension": true,
	"application/x-xpinstall":               true,
}

// IsExecutableMIME returns true if the MIME type indicates an executable
func IsExecutableMIME(mime string) bool {
	return executableMIMEs[mime]
}

// Category returns a broad category for a MIME type
func Category(mime string) string {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return CategoryImage
	case strings.HasPrefix(mime, "video/"):
		return CategoryVideo
	case strings.HasPrefix(mime, "audio/"):
		return CategoryAudio
	case strings.HasPrefix(mime, "text/"):
		return CategoryText
	case strings.HasPrefix(mime, "font/"), strings.HasPrefix(mime, "application/font-"):
		return CategoryFont
	case IsExecutableMIME(mime):
		return CategoryExecutable
	case mime == "application/epub+zip", mime == "application/pdf",
		mime == "application/rtf", mime == "application/postscript":
		return CategoryDocument
	case archiveMIMEs[mime] ||
		strings.Contains(mime, "zip") || strings.Contains(mime, "tar") ||
		strings.Contains(mime, "rar") || strings.Contains(mime, "7z") ||
		strings.Contains(mime, "gzip") || strings.Contains(mime, "bzip"):
		return CategoryArchive
	default:
		return CategoryOther
	}
}
