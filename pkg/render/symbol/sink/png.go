// Package sink serializes rendered symbols for delivery: PNG bytes for
// HTTP responses and files on disk for the CLI.
package sink

import (
	"bytes"
	"image"
	"image/png"
	"os"

	"github.com/maxwalkley/dotqr/pkg/errors"
)

// EncodePNG serializes img to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncode, err, "encode png")
	}
	return buf.Bytes(), nil
}

// WritePNG serializes img and writes it to path.
func WritePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeEncode, err, "write %s", path)
	}
	return nil
}
