package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"sync"
)

// ErrEncodingUnavailable is returned when no lossy encoder is registered.
// It is surfaced verbatim rather than silently degrading to lossless output.
var ErrEncodingUnavailable = errors.New("no lossy image encoder available")

// Encoder produces a lossy byte payload for a raster image. Quality is in
// (0, 1].
type Encoder interface {
	Encode(img image.Image, quality float64) ([]byte, error)
}

var (
	encoderMu sync.RWMutex
	encoder   Encoder = jpegEncoder{}
)

// RegisterEncoder replaces the process-wide lossy encoder. Passing nil
// deregisters it, after which Recompress fails with ErrEncodingUnavailable.
func RegisterEncoder(e Encoder) {
	encoderMu.Lock()
	encoder = e
	encoderMu.Unlock()
}

// Recompress re-encodes a page raster at the given quality factor. The
// caller clamps quality to [0, 1]; values outside that range fail fast.
func Recompress(img image.Image, quality float64) ([]byte, error) {
	if quality <= 0 || quality > 1 {
		return nil, fmt.Errorf("quality factor %v out of range (0, 1]", quality)
	}

	encoderMu.RLock()
	e := encoder
	encoderMu.RUnlock()

	if e == nil {
		return nil, ErrEncodingUnavailable
	}

	return e.Encode(img, quality)
}

// jpegEncoder is the default encoder, backed by the standard JPEG codec.
type jpegEncoder struct{}

func (jpegEncoder) Encode(img image.Image, quality float64) ([]byte, error) {
	var buf bytes.Buffer

	err := jpeg.Encode(&buf, img, &jpeg.Options{
		Quality: int(quality * 100),
	})
	if err != nil {
		return nil, fmt.Errorf("jpeg encoding failed: %w", err)
	}

	return buf.Bytes(), nil
}
