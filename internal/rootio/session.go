// Package rootio reads 2-D histograms out of ROOT files.
package rootio

import (
	"errors"
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"

	"github.com/banshee-data/th2fits/internal/histogram"
)

var (
	// ErrNotFound reports a name with no object behind it.
	ErrNotFound = errors.New("object not found")
	// ErrWrongType reports an object that is not a supported 2-D histogram.
	ErrWrongType = errors.New("object is not a 2-D histogram")
)

// Status tags the outcome of a Lookup.
type Status int

const (
	Found Status = iota
	NotFound
	WrongType
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case WrongType:
		return "wrong type"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Resolution is the typed result of looking an object up by name.
type Resolution struct {
	Name   string
	Status Status
	// Class is the ROOT class name of the stored object, when one exists.
	Class string
	// Err carries the underlying reader or adapter error, if any.
	Err error

	hist histogram.Histogram2D
}

// Histogram returns the resolved histogram, or an error wrapping ErrNotFound
// or ErrWrongType that names the object.
func (r Resolution) Histogram() (histogram.Histogram2D, error) {
	switch r.Status {
	case Found:
		return r.hist, nil
	case WrongType:
		if r.Err != nil {
			return nil, fmt.Errorf("%q has class %s: %w: %v", r.Name, r.Class, ErrWrongType, r.Err)
		}
		return nil, fmt.Errorf("%q has class %s: %w", r.Name, r.Class, ErrWrongType)
	default:
		if r.Err != nil {
			return nil, fmt.Errorf("%q: %w: %v", r.Name, ErrNotFound, r.Err)
		}
		return nil, fmt.Errorf("%q: %w", r.Name, ErrNotFound)
	}
}

// Session is an open ROOT file scoped to a single conversion.
type Session struct {
	path string
	file *riofs.File
}

// Open opens the ROOT file at path. The caller must Close the session.
func Open(path string) (*Session, error) {
	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ROOT file %s: %w", path, err)
	}
	return &Session{path: path, file: f}, nil
}

// Path returns the file the session was opened on.
func (s *Session) Path() string { return s.path }

// Close releases the underlying file.
func (s *Session) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Lookup resolves name to a 2-D histogram.
func (s *Session) Lookup(name string) Resolution {
	res := Resolution{Name: name, Status: NotFound}
	if s.file == nil {
		res.Err = errors.New("session closed")
		return res
	}

	obj, err := s.file.Get(name)
	if err != nil {
		res.Err = err
		return res
	}
	if obj == nil {
		return res
	}
	return resolveObject(name, obj)
}

func resolveObject(name string, obj root.Object) Resolution {
	res := Resolution{Name: name, Status: WrongType, Class: obj.Class()}

	h2, ok := obj.(rhist.H2)
	if !ok {
		return res
	}
	h, err := newTH2(name, res.Class, h2)
	if err != nil {
		res.Err = err
		return res
	}
	res.Status = Found
	res.hist = h
	return res
}

// Histogram looks name up and returns it as a 2-D histogram.
func (s *Session) Histogram(name string) (histogram.Histogram2D, error) {
	return s.Lookup(name).Histogram()
}
