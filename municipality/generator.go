package municipality

import (
	"math/rand"
	"strings"

	"github.com/RoaringBitmap/roaring"
)

const (
	minPostalCode = 1
	maxPostalCode = 9998

	generatedNameLen = 8
	maxGenderCount   = 10000
)

var regionNames = []string{
	"Hlavni mesto Praha",
	"Jihocesky",
	"Jihomoravsky",
	"Karlovarsky",
	"Kraj Vysocina",
	"Kralovehradecky",
	"Liberecky",
	"Moravskoslezsky",
	"Olomoucky",
	"Pardubicky",
	"Plzensky",
	"Stredocesky",
	"Ustecky",
	"Zlinsky",
}

// RegionName returns name of region by its number (1-based), unknown numbers map to the last region
func RegionName(number int) string {
	if number < 1 || number > len(regionNames) {
		return regionNames[len(regionNames)-1]
	}
	return regionNames[number-1]
}

// RegionCount is number of known regions
func RegionCount() int {
	return len(regionNames)
}

// Generator produces random valid records.
// Postal codes are handed out without repetition while unused ones remain.
type Generator struct {
	rnd  *rand.Rand
	used *roaring.Bitmap
}

// NewGenerator creates generator with given seed
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rnd:  rand.New(rand.NewSource(seed)),
		used: roaring.New(),
	}
}

// Reserve marks postal code as taken, e.g. by an imported record
func (g *Generator) Reserve(postalCode int) {
	if postalCode >= minPostalCode && postalCode <= maxPostalCode {
		g.used.Add(uint32(postalCode))
	}
}

// Reset forgets all reserved postal codes
func (g *Generator) Reset() {
	g.used.Clear()
}

// Used returns number of reserved postal codes
func (g *Generator) Used() int {
	return int(g.used.GetCardinality())
}

// Next returns random record
func (g *Generator) Next() *Municipality {
	region := g.rnd.Intn(len(regionNames)) + 1
	males := g.rnd.Intn(maxGenderCount + 1)
	females := g.rnd.Intn(maxGenderCount + 1)
	return &Municipality{
		RegionNumber: region,
		RegionName:   RegionName(region),
		PostalCode:   g.postalCode(),
		Name:         g.name(),
		Males:        males,
		Females:      females,
		Total:        males + females,
	}
}

func (g *Generator) postalCode() int {
	span := maxPostalCode - minPostalCode + 1
	if g.Used() >= span {
		return g.rnd.Intn(span) + minPostalCode
	}
	code := g.rnd.Intn(span) + minPostalCode
	for g.used.Contains(uint32(code)) {
		code++
		if code > maxPostalCode {
			code = minPostalCode
		}
	}
	g.used.Add(uint32(code))
	return code
}

func (g *Generator) name() string {
	var sb strings.Builder
	sb.WriteByte(byte('A' + g.rnd.Intn(26)))
	for i := 1; i < generatedNameLen; i++ {
		sb.WriteByte(byte('a' + g.rnd.Intn(26)))
	}
	return sb.String()
}
