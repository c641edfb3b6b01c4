// Package converter turns a named 2-D histogram into a FITS image file.
//
// A conversion is a single linear pass: open the input, resolve the object,
// print its summary, flatten the bins, and write the image (plus optional
// WCS keywords and previews). Any failure aborts the conversion; nothing is
// retried.
//
// The input and object are resolved before the output path is touched. A
// failed lookup therefore creates no output, but it also leaves any file
// from an earlier run in place unchanged.
//
// The stale output file is removed before the new one is created. That
// remove-then-create sequence is not atomic, so concurrent conversions to the
// same output path are not supported. With AtomicWrite the image is written
// to a temporary sibling and renamed into place, so the output path never
// holds a partial file.
package converter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/banshee-data/th2fits/internal/fitsimg"
	"github.com/banshee-data/th2fits/internal/fsutil"
	"github.com/banshee-data/th2fits/internal/histogram"
	"github.com/banshee-data/th2fits/internal/monitoring"
	"github.com/banshee-data/th2fits/internal/preview"
	"github.com/banshee-data/th2fits/internal/rootio"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrOpenInput      = errors.New("cannot open input file")
	ErrObjectNotFound = errors.New("object not found")
	ErrWrongType      = errors.New("object is not a 2-D histogram")
	ErrCreateOutput   = errors.New("cannot create the output fits file")
	ErrWriteOutput    = errors.New("cannot write the output fits file")
	ErrWritePreview   = errors.New("cannot write preview")
	// ErrShortBuffer reports a row bound that yields fewer values than the image needs.
	ErrShortBuffer = fitsimg.ErrShortBuffer
)

// Session is an open input container.
type Session interface {
	// Histogram resolves name, failing with an error wrapping
	// rootio.ErrNotFound or rootio.ErrWrongType.
	Histogram(name string) (histogram.Histogram2D, error)
	Close() error
}

// Opener opens the input container at path.
type Opener func(path string) (Session, error)

// OpenROOT opens a ROOT file session.
func OpenROOT(path string) (Session, error) {
	s, err := rootio.Open(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Request describes one conversion.
type Request struct {
	InputPath  string
	ObjectName string
	OutputPath string

	// Reverse walks the first axis back-to-front.
	Reverse bool
	// WCS stamps CTYPE/CRPIX/CRVAL/CDELT keywords on the image.
	WCS bool
	// RowBound selects the outer loop limit used when flattening.
	RowBound histogram.RowBound
	// AtomicWrite writes to a temporary file and renames it into place.
	AtomicWrite bool

	// Optional preview destinations; empty disables.
	PreviewPNG  string
	PreviewHTML string
}

// Validate checks that all paths and the object name are present.
func (r Request) Validate() error {
	switch {
	case r.InputPath == "":
		return fmt.Errorf("%w: missing input path", ErrInvalidRequest)
	case r.ObjectName == "":
		return fmt.Errorf("%w: missing object name", ErrInvalidRequest)
	case r.OutputPath == "":
		return fmt.Errorf("%w: missing output path", ErrInvalidRequest)
	}
	return nil
}

// Result reports what a successful conversion wrote.
type Result struct {
	OutputPath string
	NX, NY     int
	WCS        *fitsimg.WCS
	Summary    histogram.Summary
	Previews   []string
}

// Converter performs conversions against a filesystem and input opener.
type Converter struct {
	FS     fsutil.FileSystem
	Open   Opener
	Stdout io.Writer

	// tempName picks the temporary sibling used by AtomicWrite.
	tempName func(out string) string
}

// New returns a Converter on the real filesystem reading ROOT files.
func New() *Converter {
	return &Converter{
		FS:     fsutil.OSFileSystem{},
		Open:   OpenROOT,
		Stdout: os.Stdout,
	}
}

func defaultTempName(out string) string {
	return filepath.Join(filepath.Dir(out), "."+filepath.Base(out)+".tmp-"+uuid.NewString())
}

// Convert runs req to completion or returns the first error.
func (c *Converter) Convert(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess, err := c.Open(req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrOpenInput, req.InputPath, err)
	}
	defer sess.Close()

	h, err := sess.Histogram(req.ObjectName)
	if err != nil {
		if errors.Is(err, rootio.ErrWrongType) {
			return nil, fmt.Errorf("%w: %s in %s: %w", ErrWrongType, req.ObjectName, req.InputPath, err)
		}
		return nil, fmt.Errorf("%w: %s in %s: %w", ErrObjectNotFound, req.ObjectName, req.InputPath, err)
	}

	summary := histogram.Summarize(h)
	if c.Stdout != nil {
		if err := summary.Print(c.Stdout); err != nil {
			return nil, fmt.Errorf("print summary: %w", err)
		}
	}

	img := fitsimg.Image{
		NX:     h.BinCountX(),
		NY:     h.BinCountY(),
		Pixels: histogram.Flatten(h, histogram.FlattenOptions{Reverse: req.Reverse, RowBound: req.RowBound}),
	}
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("%s with row bound %s: %w", req.ObjectName, req.RowBound, err)
	}
	if req.WCS {
		w := fitsimg.DeriveWCS(h, req.Reverse)
		img.WCS = &w
	}

	monitoring.Logf("Writing to %s", req.OutputPath)
	if err := c.writeImage(req, img); err != nil {
		return nil, err
	}

	res := &Result{
		OutputPath: req.OutputPath,
		NX:         img.NX,
		NY:         img.NY,
		WCS:        img.WCS,
		Summary:    summary,
	}

	title := req.ObjectName
	if summary.Title != "" {
		title = summary.Title
	}
	if req.PreviewPNG != "" {
		if err := c.writeFile(req.PreviewPNG, func(w io.Writer) error {
			return preview.WritePNG(w, img, title)
		}); err != nil {
			return res, fmt.Errorf("%w %s: %w", ErrWritePreview, req.PreviewPNG, err)
		}
		monitoring.Logf("Wrote preview %s", req.PreviewPNG)
		res.Previews = append(res.Previews, req.PreviewPNG)
	}
	if req.PreviewHTML != "" {
		if err := c.writeFile(req.PreviewHTML, func(w io.Writer) error {
			return preview.WriteHTML(w, img, title)
		}); err != nil {
			return res, fmt.Errorf("%w %s: %w", ErrWritePreview, req.PreviewHTML, err)
		}
		monitoring.Logf("Wrote preview %s", req.PreviewHTML)
		res.Previews = append(res.Previews, req.PreviewHTML)
	}

	return res, nil
}

// writeImage replaces req.OutputPath with img.
func (c *Converter) writeImage(req Request, img fitsimg.Image) error {
	if err := fsutil.RemoveIfExists(c.FS, req.OutputPath); err != nil {
		return fmt.Errorf("%w %s: remove stale file: %w", ErrCreateOutput, req.OutputPath, err)
	}

	target := req.OutputPath
	if req.AtomicWrite {
		name := c.tempName
		if name == nil {
			name = defaultTempName
		}
		target = name(req.OutputPath)
	}

	f, err := c.FS.Create(target)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrCreateOutput, req.OutputPath, err)
	}

	if err := writeAndClose(f, func(w io.Writer) error { return fitsimg.Write(w, img) }); err != nil {
		_ = c.FS.Remove(target)
		return fmt.Errorf("%w %s: %w", ErrWriteOutput, req.OutputPath, err)
	}

	if target != req.OutputPath {
		if err := c.FS.Rename(target, req.OutputPath); err != nil {
			_ = c.FS.Remove(target)
			return fmt.Errorf("%w %s: %w", ErrWriteOutput, req.OutputPath, err)
		}
	}
	return nil
}

// writeFile creates path and fills it with render, removing it on failure.
func (c *Converter) writeFile(path string, render func(io.Writer) error) error {
	f, err := c.FS.Create(path)
	if err != nil {
		return err
	}
	if err := writeAndClose(f, render); err != nil {
		_ = c.FS.Remove(path)
		return err
	}
	return nil
}

func writeAndClose(f io.WriteCloser, render func(io.Writer) error) error {
	bw := bufio.NewWriter(f)
	err := render(bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
