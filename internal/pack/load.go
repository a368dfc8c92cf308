package pack

import (
	"context"
	"errors"

	"github.com/abhisek/dungeonquiz/internal/catalog"
)

// Load fetches and parses the pack a descriptor points at. Fetch and parse
// failures are both reported as *catalog.UnavailableError.
func Load(ctx context.Context, src catalog.Source, desc catalog.Descriptor) (*Pack, error) {
	data, err := src.Pack(ctx, desc.File)
	if err != nil {
		return nil, asUnavailable(desc.File, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, &catalog.UnavailableError{Ref: desc.File, Err: err}
	}
	return p, nil
}

// LoadIndex fetches the pack index, reporting failures as
// *catalog.UnavailableError.
func LoadIndex(ctx context.Context, src catalog.Source) (*catalog.Index, error) {
	idx, err := src.Index(ctx)
	if err != nil {
		return nil, asUnavailable(catalog.IndexFile, err)
	}
	return idx, nil
}

func asUnavailable(ref string, err error) error {
	var ue *catalog.UnavailableError
	if errors.As(err, &ue) {
		return err
	}
	return &catalog.UnavailableError{Ref: ref, Err: err}
}
