package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// Decode decodes PNG, JPEG, GIF, WebP or SVG bytes. name is only used to
// recognize SVG documents by extension.
func Decode(data []byte, name string) (image.Image, error) {
	if isSVG(data, name) {
		img, err := rasterizeSVG(data, svgRasterSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, name, err)
		}
		return img, nil
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, name, err)
	}
	return img, nil
}

func isSVG(data []byte, name string) bool {
	if strings.EqualFold(path.Ext(name), ".svg") {
		return true
	}
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.Contains(head, []byte("<svg"))
}
