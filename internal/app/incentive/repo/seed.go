package repo

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// SeedDocument is the YAML layout of a seed file.
type SeedDocument struct {
	Brands   []domain.Brand   `yaml:"brands"`
	Programs []domain.Program `yaml:"programs"`
}

// DefaultSeed returns the built-in record set.
func DefaultSeed() (memdb.Tables, error) {
	return ParseSeed(defaultSeed, "default seed")
}

// LoadSeedFile reads and validates a seed file.
func LoadSeedFile(path string) (memdb.Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return memdb.Tables{}, fmt.Errorf("read seed %s: %w", path, err)
	}
	return ParseSeed(data, path)
}

// ParseSeed decodes a seed document and validates every record. All record
// errors are reported together; ids must be unique per table. Programs may
// reference unknown brands.
func ParseSeed(data []byte, source string) (memdb.Tables, error) {
	var doc SeedDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return memdb.Tables{}, fmt.Errorf("parse %s: %w", source, err)
	}

	var errs []error

	brandIDs := make(map[string]struct{}, len(doc.Brands))
	for i, b := range doc.Brands {
		b = b.Normalize()
		doc.Brands[i] = b
		if b.ID == "" {
			errs = append(errs, fmt.Errorf("brands[%d]: %w", i, domain.ErrMissingID))
		} else if _, dup := brandIDs[b.ID]; dup {
			errs = append(errs, fmt.Errorf("brands[%d]: %w: %s", i, domain.ErrBrandExists, b.ID))
		}
		brandIDs[b.ID] = struct{}{}
		if err := b.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("brands[%d] (%s): %w", i, b.ID, err))
		}
	}

	programIDs := make(map[string]struct{}, len(doc.Programs))
	for i, p := range doc.Programs {
		p = p.WithDefaults()
		doc.Programs[i] = p
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("programs[%d]: %w", i, domain.ErrMissingID))
		} else if _, dup := programIDs[p.ID]; dup {
			errs = append(errs, fmt.Errorf("programs[%d]: %w: %s", i, domain.ErrProgramExists, p.ID))
		}
		programIDs[p.ID] = struct{}{}
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("programs[%d] (%s): %w", i, p.ID, err))
		}
	}

	if len(errs) > 0 {
		return memdb.Tables{}, fmt.Errorf("invalid %s: %w", source, errors.Join(errs...))
	}

	return memdb.Tables{Brands: doc.Brands, Programs: doc.Programs}, nil
}
