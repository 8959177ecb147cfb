package agenda

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/neganovalexey/agenda/codeerrors"
	"github.com/neganovalexey/agenda/municipality"
	"github.com/neganovalexey/agenda/table"
	"github.com/neganovalexey/agenda/traverse"
)

// maxGenerateAttempts bounds retries on generated name collisions per record
const maxGenerateAttempts = 100

// Registry keeps records in a table keyed by settlement name
type Registry struct {
	cfg   Config
	table *table.Table[string, *municipality.Municipality]
	names *nameBloom
	gen   *municipality.Generator
}

// NewRegistry creates empty registry
func NewRegistry(cfg Config) *Registry {
	cfg.setDefaults()
	return &Registry{
		cfg:   cfg,
		table: table.NewOrdered[string, *municipality.Municipality](),
		names: newNameBloom(cfg.ExpectedItems),
		gen:   municipality.NewGenerator(cfg.Seed),
	}
}

// Import replaces registry content with records from storage object
func (r *Registry) Import(ctx context.Context, path string) (ImportResult, error) {
	if r.cfg.Storage == nil {
		return ImportResult{}, codeerrors.ErrInvalidState.WithMessage("registry has no storage")
	}
	src, err := r.cfg.Storage.OpenObject(ctx, path)
	if err != nil {
		return ImportResult{}, errors.Wrapf(err, "import %s", path)
	}
	defer src.Close()

	res, err := r.ImportFrom(src)
	if err != nil {
		return res, errors.Wrapf(err, "import %s", path)
	}
	return res, nil
}

// ImportFrom replaces registry content with records read from src.
// Malformed input leaves the registry untouched; a duplicate name stops
// the import and keeps the records inserted before it.
func (r *Registry) ImportFrom(src io.Reader) (ImportResult, error) {
	records, err := municipality.ReadAll(src)
	if err != nil {
		return ImportResult{}, err
	}

	r.clear(maxInt(r.cfg.ExpectedItems, len(records)))
	for i, m := range records {
		if err := r.Insert(m); err != nil {
			r.cfg.Log.WithError(err).Errorf("registry: import stopped after %d records", i)
			return ImportResult{Count: i}, errors.Wrapf(err, "record %d", i+1)
		}
	}

	if len(records) == 0 {
		r.cfg.Log.Warnf("registry: no records imported, input is probably empty")
	} else {
		r.cfg.Log.Infof("registry: imported %d records", len(records))
	}
	return ImportResult{Count: len(records)}, nil
}

// Insert adds record keyed by its name
func (r *Registry) Insert(m *municipality.Municipality) error {
	if err := r.table.Insert(m.Name, m); err != nil {
		return err
	}
	r.names.insert(m.Name)
	r.gen.Reserve(m.PostalCode)
	r.cfg.Log.Debugf("registry: inserted %s", m.Name)
	return nil
}

// Find returns record by name
func (r *Registry) Find(name string) (*municipality.Municipality, error) {
	if !r.names.mayContain(name) {
		return nil, codeerrors.ErrNotFound.WithMessage("no settlement named %q", name)
	}
	return r.table.Find(name)
}

// Delete removes record by name and returns it
func (r *Registry) Delete(name string) (*municipality.Municipality, error) {
	m, err := r.table.Delete(name)
	if err != nil {
		return nil, err
	}
	r.cfg.Log.Debugf("registry: deleted %s", name)
	return m, nil
}

// Iterate returns one-shot iterator over records
func (r *Registry) Iterate(mode traverse.Mode) traverse.Iter[*municipality.Municipality] {
	return r.table.Iterate(mode)
}

// Generate inserts n random records and returns them
func (r *Registry) Generate(n int) ([]*municipality.Municipality, error) {
	generated := make([]*municipality.Municipality, 0, n)
	for len(generated) < n {
		m, err := r.generateOne()
		if err != nil {
			return generated, err
		}
		generated = append(generated, m)
	}
	r.cfg.Log.Infof("registry: generated %d records", n)
	return generated, nil
}

func (r *Registry) generateOne() (*municipality.Municipality, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		m := r.gen.Next()
		err := r.Insert(m)
		if err == nil {
			return m, nil
		}
		if !errors.Is(err, codeerrors.ErrDuplicateKey) {
			return nil, err
		}
	}
	return nil, codeerrors.ErrInvalidState.WithMessage("no unique name after %d attempts", maxGenerateAttempts)
}

// Clear removes all records
func (r *Registry) Clear() {
	r.clear(r.cfg.ExpectedItems)
}

func (r *Registry) clear(expectedItems int) {
	r.table.Clear()
	r.names = newNameBloom(expectedItems)
	r.gen.Reset()
}

// Len returns number of records
func (r *Registry) Len() int {
	return r.table.Count()
}

// Empty checks registry is empty
func (r *Registry) Empty() bool {
	return r.table.Empty()
}
