package record

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// MJPEGEncoder streams JPEG frames into an AVI container.
type MJPEGEncoder struct {
	aw      mjpeg.AviWriter
	buf     bytes.Buffer
	options jpeg.Options
}

// NewMJPEG creates the AVI at path for w*h frames.
func NewMJPEG(path string, w, h, fps, quality int) (*MJPEGEncoder, error) {
	if fps <= 0 {
		fps = 30
	}
	if quality <= 0 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	aw, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, err
	}
	return &MJPEGEncoder{aw: aw, options: jpeg.Options{Quality: quality}}, nil
}

func (e *MJPEGEncoder) AddFrame(img *image.RGBA) error {
	e.buf.Reset()
	if err := jpeg.Encode(&e.buf, img, &e.options); err != nil {
		return err
	}
	return e.aw.AddFrame(e.buf.Bytes())
}

func (e *MJPEGEncoder) Close() error { return e.aw.Close() }
