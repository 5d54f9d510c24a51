package application

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
)

// encodeThumbnail converts a raster image into a PNG data URL for the
// frontend. An empty string means no thumbnail.
func encodeThumbnail(img image.Image) string {
	if img == nil {
		return ""
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return ""
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
