// Package fitsimg writes flattened histograms as FITS primary images.
package fitsimg

import (
	"github.com/astrogo/fitsio"

	"github.com/banshee-data/th2fits/internal/histogram"
)

// Header keywords written for the linear WCS.
const (
	KeyCType1 = "CTYPE1"
	KeyCType2 = "CTYPE2"
	KeyCRPix1 = "CRPIX1"
	KeyCRVal1 = "CRVAL1"
	KeyCDelt1 = "CDELT1"
	KeyCRPix2 = "CRPIX2"
	KeyCRVal2 = "CRVAL2"
	KeyCDelt2 = "CDELT2"
)

// Axis type labels.
const (
	CTypeRA  = "Ra"
	CTypeDec = "Dec"
)

// AxisMapping maps pixel indices along one image axis onto world coordinates.
type AxisMapping struct {
	CType    string
	RefPixel int
	RefValue float64
	Delta    float64
}

// WCS holds the linear mapping for both image axes.
type WCS struct {
	Axis1 AxisMapping
	Axis2 AxisMapping
}

// DeriveWCS computes the mapping from the binning of h. The reference pixel
// is always 1. With reverse the first image pixel is the last X bin, so the
// reference value moves there and the increment changes sign. Axis 2 never
// depends on reverse.
func DeriveWCS(h histogram.Histogram2D, reverse bool) WCS {
	ref1 := h.BinCenter(histogram.X, 1)
	delta1 := h.BinWidth(histogram.X, 1)
	if reverse {
		ref1 = h.BinCenter(histogram.X, h.BinCountX())
		delta1 = -delta1
	}

	return WCS{
		Axis1: AxisMapping{
			CType:    CTypeRA,
			RefPixel: 1,
			RefValue: ref1,
			Delta:    delta1,
		},
		Axis2: AxisMapping{
			CType:    CTypeDec,
			RefPixel: 1,
			RefValue: h.BinCenter(histogram.Y, 1),
			Delta:    h.BinWidth(histogram.Y, 1),
		},
	}
}

// Cards returns the header cards in the order they are written.
func (w WCS) Cards() []fitsio.Card {
	return []fitsio.Card{
		{Name: KeyCType1, Value: w.Axis1.CType},
		{Name: KeyCType2, Value: w.Axis2.CType},
		{Name: KeyCRPix1, Value: w.Axis1.RefPixel},
		{Name: KeyCRVal1, Value: w.Axis1.RefValue},
		{Name: KeyCDelt1, Value: w.Axis1.Delta},
		{Name: KeyCRPix2, Value: w.Axis2.RefPixel},
		{Name: KeyCRVal2, Value: w.Axis2.RefValue},
		{Name: KeyCDelt2, Value: w.Axis2.Delta},
	}
}
