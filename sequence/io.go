package sequence

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/wirepat/fileio"
)

// Writer streams sequences as one JSON array, so a large design is never
// held in memory as a whole. Close writes the closing bracket.
type Writer struct {
	w      io.Writer
	n      int
	closed bool
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends seqs to the array.
func (sw *Writer) Write(seqs ...NetSequence) error {
	if sw.closed {
		return errors.New("sequence: write after close")
	}
	for _, s := range seqs {
		if s.Patterns == nil {
			s.Patterns = []string{}
		}
		b, err := json.Marshal(s)
		if err != nil {
			return errors.Wrap(err, "sequence: marshal")
		}
		sep := ",\n"
		if sw.n == 0 {
			sep = "[\n"
		}
		if _, err = io.WriteString(sw.w, sep); err != nil {
			return errors.Wrap(err, "sequence: write")
		}
		if _, err = sw.w.Write(b); err != nil {
			return errors.Wrap(err, "sequence: write")
		}
		sw.n++
	}

	return nil
}

// Count returns the number of sequences written so far.
func (sw *Writer) Count() int { return sw.n }

// Close terminates the array. An empty Writer produces "[]".
func (sw *Writer) Close() error {
	if sw.closed {
		return nil
	}
	sw.closed = true
	tail := "\n]\n"
	if sw.n == 0 {
		tail = "[]\n"
	}
	_, err := io.WriteString(sw.w, tail)

	return errors.Wrap(err, "sequence: close")
}

// ReadJSON decodes an array written by Writer.
func ReadJSON(r io.Reader) ([]NetSequence, error) {
	var seqs []NetSequence
	if err := json.NewDecoder(r).Decode(&seqs); err != nil {
		return nil, errors.Wrap(err, "sequence: decode")
	}

	return seqs, nil
}

// ReadFile reads a sequence file, transparently decompressing .gz or .zst.
func ReadFile(path string) ([]NetSequence, error) {
	f, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seqs, err := ReadJSON(f)

	return seqs, errors.Wrapf(err, "sequence: %s", path)
}
