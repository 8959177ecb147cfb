package municipality

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/neganovalexey/agenda/codeerrors"
)

// Separator delimits record fields
const Separator = ";"

const fieldCount = 7

// ParseLine decodes "region number;region name;postal code;name;males;females;total"
func ParseLine(line string) (*Municipality, error) {
	fields := strings.Split(strings.TrimRight(line, "\r"), Separator)
	if len(fields) != fieldCount {
		return nil, codeerrors.ErrBadRecord.WithMessage("expected %d fields, got %d", fieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var nums [5]int
	for i, idx := range []int{0, 2, 4, 5, 6} {
		n, err := strconv.Atoi(fields[idx])
		if err != nil {
			return nil, codeerrors.ErrBadRecord.WithMessage("field %d is not a number", idx+1).WithReason(err)
		}
		nums[i] = n
	}
	if fields[3] == "" {
		return nil, codeerrors.ErrBadRecord.WithMessage("empty settlement name")
	}

	return &Municipality{
		RegionNumber: nums[0],
		RegionName:   fields[1],
		PostalCode:   nums[1],
		Name:         fields[3],
		Males:        nums[2],
		Females:      nums[3],
		Total:        nums[4],
	}, nil
}

// FormatLine encodes record into the delimited layout without line break
func FormatLine(m *Municipality) string {
	return strings.Join([]string{
		strconv.Itoa(m.RegionNumber),
		m.RegionName,
		strconv.Itoa(m.PostalCode),
		m.Name,
		strconv.Itoa(m.Males),
		strconv.Itoa(m.Females),
		strconv.Itoa(m.Total),
	}, Separator)
}

// Reader decodes records line by line, blank lines are skipped
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates records reader
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Read returns next record or io.EOF
func (r *Reader) Read() (*Municipality, error) {
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		m, err := ParseLine(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", r.line)
		}
		return m, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read records")
	}
	return nil, io.EOF
}

// Line returns number of the last read line
func (r *Reader) Line() int {
	return r.line
}

// ReadAll reads all records until EOF
func ReadAll(r io.Reader) ([]*Municipality, error) {
	reader := NewReader(r)
	records := make([]*Municipality, 0)
	for {
		m, err := reader.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, m)
	}
}

// Writer encodes records one per line
type Writer struct {
	w     *bufio.Writer
	count int
}

// NewWriter creates records writer, Flush must be called at the end
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write appends record line
func (w *Writer) Write(m *Municipality) error {
	if _, err := w.w.WriteString(FormatLine(m) + "\n"); err != nil {
		return errors.Wrap(err, "write record")
	}
	w.count++
	return nil
}

// Count returns number of written records
func (w *Writer) Count() int {
	return w.count
}

// Flush writes buffered data
func (w *Writer) Flush() error {
	return errors.Wrap(w.w.Flush(), "flush records")
}
