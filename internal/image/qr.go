package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	// validate png decode
	if _, err := png.Decode(bytes.NewReader(pngBytes)); err != nil {
		return nil, err
	}
	return pngBytes, nil
}

// GenerateQRImage returns a borderless QR code image in the given colors,
// for compositing onto a card.
func GenerateQRImage(text string, size int, fg, bg color.Color) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	if fg != nil {
		q.ForegroundColor = fg
	}
	if bg != nil {
		q.BackgroundColor = bg
	}
	return q.Image(size), nil
}
