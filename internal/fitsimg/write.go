package fitsimg

import (
	"errors"
	"fmt"
	"io"

	"github.com/astrogo/fitsio"
)

// BitPix is the FITS pixel type of written images (IEEE double).
const BitPix = -64

// ErrShortBuffer is returned when the pixel buffer holds fewer than NX*NY values.
var ErrShortBuffer = errors.New("pixel buffer shorter than image")

// Image is a 2-D double precision image ready to be written.
type Image struct {
	NX, NY int
	// Pixels holds at least NX*NY values with axis 1 varying fastest.
	// Values past NX*NY are not written.
	Pixels []float64
	// WCS is optional.
	WCS *WCS
}

// Validate checks the image shape against its buffer.
func (img Image) Validate() error {
	if img.NX <= 0 || img.NY <= 0 {
		return fmt.Errorf("invalid image shape %dx%d", img.NX, img.NY)
	}
	if n := img.NX * img.NY; len(img.Pixels) < n {
		return fmt.Errorf("%dx%d image needs %d pixels, have %d: %w", img.NX, img.NY, n, len(img.Pixels), ErrShortBuffer)
	}
	return nil
}

// Write streams img to w as a single primary HDU.
func Write(w io.Writer, img Image) error {
	if err := img.Validate(); err != nil {
		return err
	}

	f, err := fitsio.Create(w)
	if err != nil {
		return fmt.Errorf("create FITS stream: %w", err)
	}

	hdu := fitsio.NewImage(BitPix, []int{img.NX, img.NY})
	if img.WCS != nil {
		if err := hdu.Header().Append(img.WCS.Cards()...); err != nil {
			_ = hdu.Close()
			_ = f.Close()
			return fmt.Errorf("append WCS cards: %w", err)
		}
	}

	if err := hdu.Write(img.Pixels[:img.NX*img.NY]); err != nil {
		_ = hdu.Close()
		_ = f.Close()
		return fmt.Errorf("write image data: %w", err)
	}

	if err := f.Write(hdu); err != nil {
		_ = hdu.Close()
		_ = f.Close()
		return fmt.Errorf("write primary HDU: %w", err)
	}

	if err := hdu.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("close image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close FITS stream: %w", err)
	}
	return nil
}
