// Package scenario reads and writes kinetic point sets as JSON files.
//
//	{
//	  "version": 1,
//	  "seed": 3,
//	  "clearance": 0,
//	  "points": [{"x": 10, "y": 20, "dx": -5, "dy": 40}, ...]
//	}
//
// Point indices are implicit: the i-th entry becomes point i.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/kinetree/kinetic"
)

// Version is the file format version written by Write.
const Version = 1

// ErrVersion indicates a file written in an unsupported format version.
var ErrVersion = errors.New("scenario: unsupported version")

var qjson = jsoniter.ConfigCompatibleWithStandardLibrary

// Point is the on-disk form of a kinetic point.
type Point struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// File is one scenario.
type File struct {
	Version   int     `json:"version"`
	Seed      int64   `json:"seed,omitempty"`
	Clearance float64 `json:"clearance,omitempty"`
	Points    []Point `json:"points"`
}

// FromPointSet captures ps together with the seed it was generated from
// (0 if unknown).
func FromPointSet(ps *kinetic.PointSet, seed int64) File {
	f := File{
		Version:   Version,
		Seed:      seed,
		Clearance: ps.Clearance(),
		Points:    make([]Point, 0, ps.Len()),
	}
	for _, p := range ps.Points() {
		f.Points = append(f.Points, Point{X: p.X, Y: p.Y, DX: p.DX, DY: p.DY})
	}

	return f
}

// PointSet builds the kinetic point set described by f.
func (f File) PointSet() *kinetic.PointSet {
	points := make([]kinetic.Point, len(f.Points))
	for i, p := range f.Points {
		points[i] = kinetic.NewPoint(i, p.X, p.Y, p.DX, p.DY)
	}

	return kinetic.NewPointSet(points, kinetic.WithClearance(f.Clearance))
}

// Read decodes one scenario from r.
func Read(r io.Reader) (File, error) {
	var f File
	if err := qjson.NewDecoder(r).Decode(&f); err != nil {
		return File{}, fmt.Errorf("decoding scenario: %w", err)
	}
	if f.Version != Version {
		return File{}, fmt.Errorf("%w: %d", ErrVersion, f.Version)
	}

	return f, nil
}

// Write encodes f to w as indented JSON. A zero Version is set to Version.
func Write(w io.Writer, f File) error {
	if f.Version == 0 {
		f.Version = Version
	}
	enc := qjson.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding scenario: %w", err)
	}

	return nil
}

// Load reads the scenario stored at path.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, err
	}
	defer fh.Close()

	return Read(fh)
}

// Save writes f to path, replacing any existing file.
func Save(path string, f File) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(fh, f); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
