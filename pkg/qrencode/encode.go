// Package qrencode wraps an external QR encoder behind the module
// matrix contract consumed by the layout engine.
//
// Encoding payload text into a module grid (finder, timing and
// alignment placement, Reed-Solomon coding, data masking) is delegated
// entirely to github.com/skip2/go-qrcode. This package pins down the
// boundary: a payload string and a concrete error-correction Level go
// in, a validated square Matrix comes out. Everything downstream is
// independent of the encoder's own conventions.
package qrencode

import (
	qrcode "github.com/skip2/go-qrcode"

	"github.com/maxwalkley/dotqr/pkg/errors"
)

// Encode converts payload text into a module matrix at the given
// error-correction level. The level must be concrete: resolve
// LevelAuto with Resolve before calling.
//
// The matrix side N is determined by payload length and level per the
// QR standard; callers must not assume a particular version.
func Encode(payload string, level Level) (Matrix, error) {
	if err := errors.ValidatePayload(payload); err != nil {
		return Matrix{}, err
	}

	recovery, err := level.recovery()
	if err != nil {
		return Matrix{}, err
	}

	q, err := qrcode.New(payload, recovery)
	if err != nil {
		return Matrix{}, errors.Wrap(errors.ErrCodeEncode, err, "failed to encode payload")
	}

	// The quiet zone is layout's concern, not the encoder's: strip the
	// built-in border so the bitmap is exactly the symbol.
	q.DisableBorder = true

	m, err := NewMatrix(q.Bitmap())
	if err != nil {
		return Matrix{}, errors.Wrap(errors.ErrCodeEncode, err, "encoder produced unexpected matrix")
	}
	return m, nil
}
