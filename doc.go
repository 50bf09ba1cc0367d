// Package filemagic identifies file formats from their leading bytes
// ("magic numbers") instead of trusting file extensions.
//
// Identification walks an ordered table of [Signature] values and returns
// the first one whose rule matches. Order matters: formats built on top of
// another container (EPUB inside ZIP, CR2 inside TIFF, DEB inside ar, Opus
// inside Ogg) are listed before the container so they are not shadowed.
//
// # Basic Usage
//
//	sig, ok := filemagic.IdentifyBytes(data)
//	if !ok {
//	    // unknown format
//	}
//	fmt.Println(sig.Extension, sig.MIME) // "png image/png"
//
// Unrecognised content is not an error: the boolean result is simply false.
//
// # Byte Sources
//
// The matcher pulls bytes through a [ByteSource], which always reads from
// the start of the content. Most formats need only the first 262 bytes;
// Matroska and WebM need up to 4100 bytes to find the EBML DocType, and the
// matcher asks the source for those only when the EBML magic is present.
//
//	f, _ := os.Open("movie.mkv")
//	defer f.Close()
//	sig, ok := filemagic.Identify(filemagic.NewReaderAtSource(f))
//
// Objects in a storage backend can be inspected without downloading them
// in full, using any type with a filekit-style Read method:
//
//	src := filemagic.NewStorageSource(ctx, fs, "uploads/avatar")
//	sig, ok := filemagic.Identify(src)
//	if err := src.Err(); err != nil {
//	    // the object could not be read
//	}
//
// For plain streams, [IdentifyReader] buffers what it needs and reports read
// failures as a [*SourceError]. Content that is being copied elsewhere can be
// identified on the way through with a [Sniffer]:
//
//	s := filemagic.NewSniffer(dst, nil)
//	if _, err := io.Copy(s, upload); err != nil {
//	    return err
//	}
//	sig, ok := s.Identify()
//
// # Matchers
//
// [NewMatcher] builds a matcher over a restricted or custom table, with an
// optional result cache:
//
//	m, err := filemagic.NewMatcher(
//	    filemagic.WithMIMEFilter("image/*", "application/pdf"),
//	    filemagic.WithCache(filemagic.NewMemoryCache(4096)),
//	)
//
// Filters take glob patterns and keep the table order.
//
// # Configuration
//
// The default matcher can be configured from the environment:
//
//	BEAVER_FILEMAGIC_CACHE_ENABLED=true
//	BEAVER_FILEMAGIC_CACHE_SIZE=4096
//	BEAVER_FILEMAGIC_MIME_TYPES=image/*,video/*
//	BEAVER_FILEMAGIC_EXTENSIONS=
//
// followed by a call to [Init]. [WithPrefix] loads the same settings under a
// different prefix.
package filemagic
