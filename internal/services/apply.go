package services

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/editflow"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/delete_brand"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/delete_program"
)

// Change operations accepted in a batch file.
const (
	OpCreateBrand   = "create_brand"
	OpUpdateBrand   = "update_brand"
	OpDeleteBrand   = "delete_brand"
	OpCreateProgram = "create_program"
	OpUpdateProgram = "update_program"
	OpDeleteProgram = "delete_program"
)

// Change is one record operation in a batch.
type Change struct {
	Op      string          `yaml:"op"`
	ID      string          `yaml:"id,omitempty"`
	Brand   *domain.Brand   `yaml:"brand,omitempty"`
	Program *domain.Program `yaml:"program,omitempty"`
}

// ChangeSet is the YAML layout of a batch file.
type ChangeSet struct {
	Changes []Change `yaml:"changes"`
}

// ChangeResult reports the outcome of one change. ID is the affected record,
// including the id assigned to created records.
type ChangeResult struct {
	Index  int
	Op     string
	ID     string
	Err    error
	Detail string
}

// LoadChangeSet reads a batch file.
func LoadChangeSet(path string) (*ChangeSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read changes %s: %w", path, err)
	}
	return ParseChangeSet(data)
}

// ParseChangeSet decodes a batch document.
func ParseChangeSet(data []byte) (*ChangeSet, error) {
	var cs ChangeSet
	if err := yaml.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("parse changes: %w", err)
	}
	return &cs, nil
}

// Apply runs each change in order. Creates and updates go through an edit
// flow, so a rejected candidate is reported and leaves the store untouched.
// A failing change does not stop the batch.
func (s *ServiceOptions) Apply(ctx context.Context, cs *ChangeSet) []ChangeResult {
	results := make([]ChangeResult, 0, len(cs.Changes))
	for i, c := range cs.Changes {
		res := s.applyChange(ctx, c)
		res.Index, res.Op = i, c.Op

		if res.Err != nil {
			s.Logger.Warn("change rejected",
				zap.Int("index", i),
				zap.String("op", c.Op),
				zap.String("id", res.ID),
				zap.Error(res.Err),
			)
		}
		results = append(results, res)
	}
	return results
}

func (s *ServiceOptions) applyChange(ctx context.Context, c Change) ChangeResult {
	switch c.Op {
	case OpCreateBrand, OpUpdateBrand:
		if c.Brand == nil {
			return ChangeResult{ID: c.ID, Err: fmt.Errorf("%s: brand is required", c.Op)}
		}
		b, err := submit(ctx, s.BrandFlow(), c.Op == OpCreateBrand, c.ID, *c.Brand)
		if err != nil {
			return ChangeResult{ID: c.ID, Err: err}
		}
		return ChangeResult{ID: b.ID, Detail: b.Name}

	case OpCreateProgram, OpUpdateProgram:
		if c.Program == nil {
			return ChangeResult{ID: c.ID, Err: fmt.Errorf("%s: program is required", c.Op)}
		}
		p, err := submit(ctx, s.ProgramFlow(), c.Op == OpCreateProgram, c.ID, *c.Program)
		if err != nil {
			return ChangeResult{ID: c.ID, Err: err}
		}
		return ChangeResult{ID: p.ID, Detail: string(p.Type)}

	case OpDeleteBrand:
		resp, err := s.DeleteBrand.Execute(ctx, &delete_brand.Request{BrandID: c.ID})
		if err != nil {
			return ChangeResult{ID: c.ID, Err: err}
		}
		switch {
		case len(resp.Orphaned) > 0:
			return ChangeResult{ID: c.ID, Detail: fmt.Sprintf("%d program(s) orphaned", len(resp.Orphaned))}
		case len(resp.Cascaded) > 0:
			return ChangeResult{ID: c.ID, Detail: fmt.Sprintf("%d program(s) deleted", len(resp.Cascaded))}
		}
		return ChangeResult{ID: c.ID}

	case OpDeleteProgram:
		if _, err := s.DeleteProgram.Execute(ctx, &delete_program.Request{ProgramID: c.ID}); err != nil {
			return ChangeResult{ID: c.ID, Err: err}
		}
		return ChangeResult{ID: c.ID}

	default:
		return ChangeResult{ID: c.ID, Err: fmt.Errorf("unknown op %q", c.Op)}
	}
}

// submit opens flow for a new record or for id, submits candidate and closes
// the flow again when the submit is rejected.
func submit[T any](ctx context.Context, flow *editflow.Flow[T], create bool, id string, candidate T) (T, error) {
	var zero T
	if create {
		if err := flow.Add(); err != nil {
			return zero, err
		}
	} else if _, err := flow.Edit(ctx, id); err != nil {
		return zero, err
	}

	stored, err := flow.Submit(ctx, candidate)
	if err != nil {
		flow.Cancel()
	}
	return stored, err
}
