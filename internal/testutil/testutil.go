// Package testutil provides shared test utilities and fixtures.
//
// ROOT fixtures are written with groot so that the reader under test sees
// exactly the on-disk layout a physics job would produce.
package testutil

import (
	"path/filepath"
	"testing"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// TH2Fixture describes a uniformly binned 2-D histogram fixture.
type TH2Fixture struct {
	Name       string
	NX         int
	XMin, XMax float64
	NY         int
	YMin, YMax float64
	// Content returns the weight filled at the center of bin (ix, iy).
	// Nil leaves the histogram empty.
	Content func(ix, iy int) float64
}

// Square2x2 is the (1,1)=10, (2,1)=20, (1,2)=30, (2,2)=40 fixture on [0,2)x[0,2).
func Square2x2(name string) TH2Fixture {
	return TH2Fixture{
		Name: name,
		NX:   2, XMin: 0, XMax: 2,
		NY: 2, YMin: 0, YMax: 2,
		Content: func(ix, iy int) float64 {
			return float64(10*ix + 20*(iy-1))
		},
	}
}

// NewH2D fills an hbook histogram from fx.
func NewH2D(fx TH2Fixture) *hbook.H2D {
	h := hbook.NewH2D(fx.NX, fx.XMin, fx.XMax, fx.NY, fx.YMin, fx.YMax)
	if fx.Content == nil {
		return h
	}
	dx := (fx.XMax - fx.XMin) / float64(fx.NX)
	dy := (fx.YMax - fx.YMin) / float64(fx.NY)
	for iy := 1; iy <= fx.NY; iy++ {
		for ix := 1; ix <= fx.NX; ix++ {
			x := fx.XMin + (float64(ix)-0.5)*dx
			y := fx.YMin + (float64(iy)-0.5)*dy
			h.Fill(x, y, fx.Content(ix, iy))
		}
	}
	return h
}

// WriteROOT stores objs under their keys in a new ROOT file inside the
// test's temp dir and returns its path.
func WriteROOT(t *testing.T, fname string, objs map[string]root.Object) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), fname)
	f, err := groot.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	for key, obj := range objs {
		if err := f.Put(key, obj); err != nil {
			_ = f.Close()
			t.Fatalf("put %s: %v", key, err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
	return path
}

// WriteTH2D writes a single TH2D built from fx and returns the file path.
func WriteTH2D(t *testing.T, fx TH2Fixture) string {
	t.Helper()
	return WriteROOT(t, "hist.root", map[string]root.Object{
		fx.Name: rhist.NewH2DFrom(NewH2D(fx)),
	})
}
