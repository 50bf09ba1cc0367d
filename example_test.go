package filemagic_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gobeaver/filemagic"
)

func ExampleIdentifyBytes() {
	data := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

	sig, ok := filemagic.IdentifyBytes(data)
	if !ok {
		fmt.Println("unknown")
		return
	}
	fmt.Println(sig.Extension, sig.MIME)
	// Output: png image/png
}

func ExampleIdentifyBytes_unknown() {
	_, ok := filemagic.IdentifyBytes([]byte("just text"))
	fmt.Println(ok)
	// Output: false
}

func ExampleIdentifyReader() {
	sig, ok, err := filemagic.IdentifyReader(strings.NewReader("%PDF-1.7\n..."))
	if err != nil {
		fmt.Println("read failed:", err)
		return
	}
	fmt.Println(sig, ok)
	// Output: pdf (application/pdf) true
}

func ExampleIs() {
	src := filemagic.BytesSource("7z\xBC\xAF\x27\x1C")
	fmt.Println(filemagic.Is(src, filemagic.ExtSevenZ))
	fmt.Println(filemagic.Is(src, filemagic.ExtZIP))
	// Output:
	// true
	// false
}

func ExampleNewMatcher() {
	m, err := filemagic.NewMatcher(
		filemagic.WithMIMEFilter("image/*"),
		filemagic.WithCache(filemagic.NewMemoryCache(128)),
	)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	_, isImage := m.IdentifyBytes([]byte("GIF89a"))
	_, isPDFImage := m.IdentifyBytes([]byte("%PDF-1.4"))
	fmt.Println(isImage, isPDFImage)
	// Output: true false
}

type objects map[string][]byte

func (o objects) Read(_ context.Context, path string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(o[path])), nil
}

func ExampleNewStorageSource() {
	store := objects{"uploads/song": []byte("fLaC\x00\x00\x00\x22")}

	src := filemagic.NewStorageSource(context.Background(), store, "uploads/song")
	sig, ok := filemagic.Identify(src)
	if err := src.Err(); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(sig.Extension, ok, sig.IsAudio())
	// Output: flac true true
}

func ExampleCategory() {
	fmt.Println(filemagic.Category("application/x-7z-compressed"))
	fmt.Println(filemagic.Category("video/webm"))
	// Output:
	// archive
	// video
}
