package helper

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const thumbnailWidth = 320

var ErrNotAnImage = errors.New("snapshot payload is not a decodable image")

// DecodeSnapshot parses a whiteboard snapshot sent as a base64 string or a
// data-URL ("data:image/png;base64,....") into a raster image.
func DecodeSnapshot(imageData string) (image.Image, error) {
	raw := imageData
	if i := strings.Index(raw, "base64,"); i >= 0 {
		raw = raw[i+len("base64,"):]
	}
	buf, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, ErrNotAnImage
	}
	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, ErrNotAnImage
	}
	return img, nil
}

// SnapshotThumbnail renders a gallery thumbnail for a snapshot: resized to
// 320px wide and re-encoded as a webp data-URL.
func SnapshotThumbnail(imageData string) (string, error) {
	img, err := DecodeSnapshot(imageData)
	if err != nil {
		return "", err
	}
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, &webp.Options{Quality: 80}); err != nil {
		return "", err
	}
	return "data:image/webp;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
