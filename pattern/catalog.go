package pattern

import (
	"encoding/binary"
	"encoding/csv"
	"encoding/hex"
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"lukechampine.com/blake3"
)

// csvHeader is the header row of a catalog CSV.
var csvHeader = []string{"Pattern", "Count"}

// Entry is one catalog row.
type Entry struct {
	Name  string
	Count int
}

// Catalog counts pattern names. The zero value is not usable; call
// NewCatalog. A Catalog is not safe for concurrent use.
type Catalog struct {
	counts map[string]int
	order  []string
	total  int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{counts: make(map[string]int)}
}

// Add increments name's count by one.
func (c *Catalog) Add(name string) { c.AddN(name, 1) }

// AddN increments name's count by n. Non-positive n is ignored.
func (c *Catalog) AddN(name string, n int) {
	if n <= 0 {
		return
	}
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name] += n
	c.total += n
}

// Merge adds every count of other into c.
func (c *Catalog) Merge(other *Catalog) {
	for _, name := range other.order {
		c.AddN(name, other.counts[name])
	}
}

// Count returns name's count, 0 when unseen.
func (c *Catalog) Count(name string) int { return c.counts[name] }

// Len returns the number of distinct names.
func (c *Catalog) Len() int { return len(c.order) }

// Total returns the sum of all counts, i.e. the number of Add calls.
func (c *Catalog) Total() int { return c.total }

// Sorted returns every entry by count descending. Equal counts keep the
// order in which their names were first added.
func (c *Catalog) Sorted() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, Entry{Name: name, Count: c.counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	return out
}

// WriteCSV writes the header Pattern,Count followed by Sorted(). The
// degenerate pattern is written as an empty first field.
func (c *Catalog) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.Wrap(err, "pattern: write csv header")
	}
	for _, e := range c.Sorted() {
		if err := cw.Write([]string{e.Name, strconv.Itoa(e.Count)}); err != nil {
			return errors.Wrapf(err, "pattern: write csv row %q", e.Name)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "pattern: flush csv")
}

// ReadCSV loads a catalog written by WriteCSV. Repeated names are summed.
func ReadCSV(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	head, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrBadCSV, "missing header")
	}
	if err != nil {
		return nil, errors.Wrap(err, "pattern: read csv header")
	}
	if head[0] != csvHeader[0] || head[1] != csvHeader[1] {
		return nil, errors.Wrapf(ErrBadCSV, "header %q", head)
	}

	c := NewCatalog()
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return c, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "pattern: read csv")
		}
		n, err := strconv.Atoi(rec[1])
		if err != nil || n < 0 {
			line, _ := cr.FieldPos(1)
			return nil, errors.Wrapf(ErrBadCSV, "line %d: count %q", line, rec[1])
		}
		c.AddN(rec[0], n)
	}
}

// Fingerprint returns a hex BLAKE3-256 digest of the catalog content. Two
// catalogs with the same name→count mapping share a fingerprint regardless
// of insertion order.
func (c *Catalog) Fingerprint() string {
	names := append([]string(nil), c.order...)
	sort.Strings(names)

	h := blake3.New(32, nil)
	var buf [8]byte
	for _, name := range names {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(name)))
		_, _ = h.Write(buf[:])
		_, _ = h.Write([]byte(name))
		binary.LittleEndian.PutUint64(buf[:], uint64(c.counts[name]))
		_, _ = h.Write(buf[:])
	}

	return hex.EncodeToString(h.Sum(nil))
}
