// Package filex holds filesystem helpers for drawings: loading an image file
// as a data URL and writing a data URL back to disk.
package filex

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNotImage is returned when a file or data URL does not hold an image.
var ErrNotImage = errors.New("not an image")

// ErrMalformedDataURL is returned for strings that are not base64 data URLs.
var ErrMalformedDataURL = errors.New("malformed data URL")

// EnsureDir creates dir (and parents) if missing and returns its absolute path.
// Relative paths are resolved against the working directory.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// ReadAsDataURL reads an image file and encodes it as
// "data:<mime>;base64,<payload>". The MIME type is sniffed from the content.
func ReadAsDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%s is %s: %w", path, mt.String(), ErrNotImage)
	}

	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURL splits a base64 data URL into its payload and the file
// extension matching the sniffed content (".png", ".jpg", ...).
func DecodeDataURL(dataURL string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, "", ErrMalformedDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, "", ErrMalformedDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrMalformedDataURL, err)
	}

	return data, mimetype.Detect(data).Extension(), nil
}

// WriteDataURL decodes dataURL and writes it to dir/base+ext, creating dir
// when needed. It returns the written path.
func WriteDataURL(dir, base, dataURL string) (string, error) {
	data, ext, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	abs, err := EnsureDir(dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(abs, base+ext)
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
