package fitsimg

import (
	"fmt"
	"io"
	"strings"

	"github.com/astrogo/fitsio"
)

// Read decodes the primary image written by Write. WCS is populated only
// when CTYPE1 is present.
func Read(r io.Reader) (Image, error) {
	f, err := fitsio.Open(r)
	if err != nil {
		return Image{}, fmt.Errorf("open FITS stream: %w", err)
	}
	defer f.Close()

	hdu, ok := f.HDU(0).(fitsio.Image)
	if !ok {
		return Image{}, fmt.Errorf("primary HDU is not an image")
	}

	hdr := hdu.Header()
	if bp := hdr.Bitpix(); bp != BitPix {
		return Image{}, fmt.Errorf("unexpected BITPIX %d", bp)
	}
	axes := hdr.Axes()
	if len(axes) != 2 {
		return Image{}, fmt.Errorf("expected 2 axes, got %d", len(axes))
	}

	// fitsio fills the slice in place and needs the full length up front.
	pixels := make([]float64, axes[0]*axes[1])
	if err := hdu.Read(&pixels); err != nil {
		return Image{}, fmt.Errorf("read image data: %w", err)
	}

	img := Image{NX: axes[0], NY: axes[1], Pixels: pixels}
	if hdr.Get(KeyCType1) != nil {
		w, err := readWCS(hdr)
		if err != nil {
			return Image{}, err
		}
		img.WCS = &w
	}
	return img, nil
}

func readWCS(hdr *fitsio.Header) (WCS, error) {
	var (
		w   WCS
		err error
	)
	get := func(key string) interface{} {
		if err != nil {
			return nil
		}
		card := hdr.Get(key)
		if card == nil {
			err = fmt.Errorf("missing %s", key)
			return nil
		}
		return card.Value
	}

	w.Axis1.CType = asString(get(KeyCType1))
	w.Axis2.CType = asString(get(KeyCType2))
	w.Axis1.RefPixel = int(asFloat(get(KeyCRPix1)))
	w.Axis1.RefValue = asFloat(get(KeyCRVal1))
	w.Axis1.Delta = asFloat(get(KeyCDelt1))
	w.Axis2.RefPixel = int(asFloat(get(KeyCRPix2)))
	w.Axis2.RefValue = asFloat(get(KeyCRVal2))
	w.Axis2.Delta = asFloat(get(KeyCDelt2))
	return w, err
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimRight(s, " ")
}

func asFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case int32:
		return float64(x)
	default:
		return 0
	}
}
