package pipeline

import (
	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// Size resolves the cell profile from catalog and sizes the pack.
// Unknown cell IDs fail with UNKNOWN_CELL.
func Size(catalog cells.Catalog, opts Options) (sizing.Configuration, error) {
	if err := opts.ValidateForSizing(); err != nil {
		return sizing.Configuration{}, err
	}
	cell, err := catalog.Get(opts.Cell)
	if err != nil {
		return sizing.Configuration{}, err
	}
	req := sizing.Request{Voltage: opts.Voltage, Capacity: opts.Capacity, Cell: cell}
	if opts.Clamp {
		req = sizing.Clamp(req)
	}
	if err := req.Validate(); err != nil {
		return sizing.Configuration{}, err
	}
	return sizing.Compute(req), nil
}
