package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/HugoSmits86/nativewebp"
)

// Encoder writes img to w in one file format.
type Encoder func(w io.Writer, img image.Image) error

var (
	encodersMu sync.RWMutex
	encoders   = map[string]Encoder{
		".png":  png.Encode,
		".webp": encodeWebP,
	}
)

func encodeWebP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

// RegisterEncoder makes SaveImage handle files ending in ext (".tga").
// Formats with side effects on image.Decode live in their own packages
// and register themselves here.
func RegisterEncoder(ext string, enc Encoder) {
	encodersMu.Lock()
	defer encodersMu.Unlock()
	encoders[strings.ToLower(ext)] = enc
}

// ImageFormats lists the file extensions SaveImage understands, sorted.
func ImageFormats() []string {
	encodersMu.RLock()
	defer encodersMu.RUnlock()
	exts := make([]string, 0, len(encoders))
	for ext := range encoders {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

func encoderFor(ext string) (Encoder, bool) {
	encodersMu.RLock()
	defer encodersMu.RUnlock()
	enc, ok := encoders[ext]
	return enc, ok
}

// SaveImage writes img to path, choosing the encoder from the extension.
func SaveImage(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoderFor(ext)
	if !ok {
		return fmt.Errorf("save %s: unsupported format %q (use %s)", path, ext, strings.Join(ImageFormats(), ", "))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := enc(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
