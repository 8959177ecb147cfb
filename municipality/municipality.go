// Package municipality describes settlement records, their orderings,
// the ';' delimited text layout and a random record generator.
package municipality

import (
	"fmt"
	"strings"

	"github.com/neganovalexey/agenda/codeerrors"
)

// Municipality is a settlement record
type Municipality struct {
	RegionNumber int
	RegionName   string
	PostalCode   int
	Name         string
	Males        int
	Females      int
	Total        int
}

func (m *Municipality) String() string {
	return fmt.Sprintf("%s (region: %d %s, postal code: %d, males: %d, females: %d, total: %d)",
		m.Name, m.RegionNumber, m.RegionName, m.PostalCode, m.Males, m.Females, m.Total)
}

// Comparator orders records by priority
type Comparator func(a, b *Municipality) int

// ByTotal gives the highest priority to the most populated record
func ByTotal(a, b *Municipality) int {
	switch {
	case a.Total < b.Total:
		return -1
	case a.Total > b.Total:
		return 1
	}
	return 0
}

// ByNameDesc gives the highest priority to the alphabetically first name
func ByNameDesc(a, b *Municipality) int {
	return strings.Compare(b.Name, a.Name)
}

// ordering names accepted by ComparatorByName
const (
	OrderTotal = "total"
	OrderName  = "name"
)

// ComparatorByName resolves ordering name from config or command line
func ComparatorByName(name string) (Comparator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case OrderTotal, "":
		return ByTotal, nil
	case OrderName:
		return ByNameDesc, nil
	}
	return nil, codeerrors.ErrInvalidState.WithMessage("unknown ordering %q", name)
}
