package pattern_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wirepat/pattern"
)

type CatalogSuite struct {
	suite.Suite
	cat *pattern.Catalog
}

func (s *CatalogSuite) SetupTest() {
	s.cat = pattern.NewCatalog()
	for _, name := range []string{"R2", "T2", "R2", "", "T2", "R2", "B3"} {
		s.cat.Add(name)
	}
}

func (s *CatalogSuite) TestCountsAndConservation() {
	s.Equal(3, s.cat.Count("R2"))
	s.Equal(2, s.cat.Count("T2"))
	s.Equal(0, s.cat.Count("L9"))
	s.Equal(4, s.cat.Len())

	sum := 0
	for _, e := range s.cat.Sorted() {
		sum += e.Count
	}
	s.Equal(7, sum)
	s.Equal(7, s.cat.Total())
}

func (s *CatalogSuite) TestSortedByCountDescending() {
	s.Equal([]pattern.Entry{
		{Name: "R2", Count: 3},
		{Name: "T2", Count: 2},
		{Name: "", Count: 1},
		{Name: "B3", Count: 1},
	}, s.cat.Sorted())
}

func (s *CatalogSuite) TestCSVRoundTrip() {
	var buf bytes.Buffer
	s.Require().NoError(s.cat.WriteCSV(&buf))
	s.Equal("Pattern,Count\nR2,3\nT2,2\n,1\nB3,1\n", buf.String())

	back, err := pattern.ReadCSV(&buf)
	s.Require().NoError(err)
	s.Equal(s.cat.Sorted(), back.Sorted())
	s.Equal(s.cat.Fingerprint(), back.Fingerprint())
}

func (s *CatalogSuite) TestReadCSVErrors() {
	_, err := pattern.ReadCSV(strings.NewReader(""))
	s.ErrorIs(err, pattern.ErrBadCSV)

	_, err = pattern.ReadCSV(strings.NewReader("Name,Count\nR2,1\n"))
	s.ErrorIs(err, pattern.ErrBadCSV)

	_, err = pattern.ReadCSV(strings.NewReader("Pattern,Count\nR2,x\n"))
	s.ErrorIs(err, pattern.ErrBadCSV)

	_, err = pattern.ReadCSV(strings.NewReader("Pattern,Count\nR2,1,extra\n"))
	s.Error(err)
}

func (s *CatalogSuite) TestMergeAndFingerprint() {
	other := pattern.NewCatalog()
	other.AddN("B3", 1)
	other.AddN("R2", 3)
	other.AddN("", 1)
	other.AddN("T2", 2)
	other.AddN("T2", 0)
	s.Equal(s.cat.Fingerprint(), other.Fingerprint())
	s.Len(other.Fingerprint(), 64)

	other.Add("L2")
	s.NotEqual(s.cat.Fingerprint(), other.Fingerprint())

	s.cat.Merge(other)
	s.Equal(6, s.cat.Count("R2"))
	s.Equal(1, s.cat.Count("L2"))
	s.Equal(15, s.cat.Total())
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}
