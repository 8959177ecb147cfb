package agenda

import (
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/heap"
	"github.com/neganovalexey/agenda/municipality"
	"github.com/neganovalexey/agenda/traverse"
)

// PriorityQueue keeps records in a max-heap under a selectable ordering
type PriorityQueue struct {
	cfg   Config
	order string
	heap  *heap.MaxHeap[*municipality.Municipality]
	gen   *municipality.Generator
}

// NewPriorityQueue creates empty queue ordered by cfg.Order
func NewPriorityQueue(cfg Config) (*PriorityQueue, error) {
	cfg.setDefaults()
	cmp, err := municipality.ComparatorByName(cfg.Order)
	if err != nil {
		return nil, err
	}
	pq := &PriorityQueue{
		cfg:   cfg,
		order: cfg.Order,
		heap:  heap.New[*municipality.Municipality](),
		gen:   municipality.NewGenerator(cfg.Seed),
	}
	if err := pq.heap.Build(nil, heap.Comparator[*municipality.Municipality](cmp)); err != nil {
		return nil, err
	}
	return pq, nil
}

// Order returns name of the current ordering
func (pq *PriorityQueue) Order() string {
	return pq.order
}

// Load replaces queue content with records from storage object
func (pq *PriorityQueue) Load(ctx context.Context, path string) (ImportResult, error) {
	if pq.cfg.Storage == nil {
		return ImportResult{}, codeerrors.ErrInvalidState.WithMessage("priority queue has no storage")
	}
	src, err := pq.cfg.Storage.OpenObject(ctx, path)
	if err != nil {
		return ImportResult{}, errors.Wrapf(err, "load %s", path)
	}
	defer src.Close()

	res, err := pq.LoadFrom(src)
	if err != nil {
		return res, errors.Wrapf(err, "load %s", path)
	}
	return res, nil
}

// LoadFrom replaces queue content with records read from src, the heap is built in bulk
func (pq *PriorityQueue) LoadFrom(src io.Reader) (ImportResult, error) {
	records, err := municipality.ReadAll(src)
	if err != nil {
		return ImportResult{}, err
	}
	cmp, err := municipality.ComparatorByName(pq.order)
	if err != nil {
		return ImportResult{}, err
	}
	if err := pq.heap.Build(records, heap.Comparator[*municipality.Municipality](cmp)); err != nil {
		return ImportResult{}, err
	}

	pq.gen.Reset()
	for _, m := range records {
		pq.gen.Reserve(m.PostalCode)
	}

	if len(records) == 0 {
		pq.cfg.Log.Warnf("queue: no records loaded, input is probably empty")
	} else {
		pq.cfg.Log.Infof("queue: loaded %d records ordered by %s", len(records), pq.order)
	}
	return ImportResult{Count: len(records)}, nil
}

// Add inserts record
func (pq *PriorityQueue) Add(m *municipality.Municipality) error {
	if err := pq.heap.Insert(m); err != nil {
		return err
	}
	pq.gen.Reserve(m.PostalCode)
	pq.cfg.Log.Debugf("queue: added %s", m.Name)
	return nil
}

// Top returns record with the highest priority
func (pq *PriorityQueue) Top() (*municipality.Municipality, error) {
	return pq.heap.PeekMax()
}

// RemoveTop removes and returns record with the highest priority
func (pq *PriorityQueue) RemoveTop() (*municipality.Municipality, error) {
	m, err := pq.heap.ExtractMax()
	if err != nil {
		return nil, err
	}
	pq.cfg.Log.Debugf("queue: removed %s", m.Name)
	return m, nil
}

// Reorganize switches ordering ("total" or "name") keeping all records
func (pq *PriorityQueue) Reorganize(order string) error {
	cmp, err := municipality.ComparatorByName(order)
	if err != nil {
		return err
	}
	pq.heap.Reorganize(heap.Comparator[*municipality.Municipality](cmp))
	pq.order = order
	pq.cfg.Log.Infof("queue: reorganized %d records by %s", pq.heap.Size(), order)
	return nil
}

// Export drains the queue into storage object in descending priority order
func (pq *PriorityQueue) Export(ctx context.Context, path string) (ExportResult, error) {
	if pq.cfg.Storage == nil {
		return ExportResult{}, codeerrors.ErrInvalidState.WithMessage("priority queue has no storage")
	}
	wo, err := pq.cfg.Storage.NewWriteObject(path)
	if err != nil {
		return ExportResult{}, errors.Wrapf(err, "export %s", path)
	}

	var buf bytes.Buffer
	res, err := pq.ExportTo(&buf)
	if err != nil {
		return res, errors.Wrapf(err, "export %s", path)
	}
	if err := wo.Write(ctx, &buf); err != nil {
		return res, errors.Wrapf(err, "export %s", path)
	}
	return res, nil
}

// ExportTo drains the queue into dst in descending priority order
func (pq *PriorityQueue) ExportTo(dst io.Writer) (ExportResult, error) {
	w := municipality.NewWriter(dst)
	for !pq.heap.Empty() {
		m, err := pq.heap.ExtractMax()
		if err != nil {
			return ExportResult{Count: w.Count()}, err
		}
		if err := w.Write(m); err != nil {
			return ExportResult{Count: w.Count()}, err
		}
	}
	if err := w.Flush(); err != nil {
		return ExportResult{Count: w.Count()}, err
	}

	if w.Count() == 0 {
		pq.cfg.Log.Warnf("queue: nothing to export")
	} else {
		pq.cfg.Log.Infof("queue: exported %d records", w.Count())
	}
	return ExportResult{Count: w.Count()}, nil
}

// Generate adds n random records and returns them
func (pq *PriorityQueue) Generate(n int) ([]*municipality.Municipality, error) {
	generated := make([]*municipality.Municipality, 0, n)
	for i := 0; i < n; i++ {
		m := pq.gen.Next()
		if err := pq.heap.Insert(m); err != nil {
			return generated, err
		}
		generated = append(generated, m)
	}
	pq.cfg.Log.Infof("queue: generated %d records", n)
	return generated, nil
}

// Iterate returns one-shot iterator over queued records
func (pq *PriorityQueue) Iterate(mode traverse.Mode) traverse.Iter[*municipality.Municipality] {
	return pq.heap.Iterate(mode)
}

// Clear removes all records, ordering is kept
func (pq *PriorityQueue) Clear() {
	pq.heap.Clear()
	pq.gen.Reset()
}

// Len returns number of queued records
func (pq *PriorityQueue) Len() int {
	return pq.heap.Size()
}
