package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/editflow"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/dashboard_summary"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/list_brands"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/list_events"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/list_programs"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/program_board"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/queries/program_detail"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/repo"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/create_brand"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/create_program"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/delete_brand"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/delete_program"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/update_brand"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/update_program"
	"github.com/light-bringer/incentive-tracker/internal/config"
	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
	"github.com/light-bringer/incentive-tracker/internal/pkg/format"
	"github.com/light-bringer/incentive-tracker/internal/pkg/idgen"
)

// Prefixes of sequence-generated ids.
const (
	BrandIDPrefix   = "BRD"
	ProgramIDPrefix = "PROG"
	EventIDPrefix   = "EVT"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	DB        *memdb.DB
	Clock     clock.Clock
	Formatter *format.Formatter
	Logger    *zap.Logger

	// Commands
	CreateBrand   *create_brand.Interactor
	UpdateBrand   *update_brand.Interactor
	DeleteBrand   *delete_brand.Interactor
	CreateProgram *create_program.Interactor
	UpdateProgram *update_program.Interactor
	DeleteProgram *delete_program.Interactor

	// Queries
	ListBrands       *list_brands.Query
	ListPrograms     *list_programs.Query
	DashboardSummary *dashboard_summary.Query
	ProgramBoard     *program_board.Query
	ProgramDetail    *program_detail.Query
	ListEvents       *list_events.Query

	brandHandler   *editflow.BrandHandler
	programHandler *editflow.ProgramHandler
}

// Option customizes NewServiceOptions.
type Option func(*settings)

type settings struct {
	clock  clock.Clock
	tables *memdb.Tables
}

// WithClock replaces the system clock.
func WithClock(c clock.Clock) Option {
	return func(s *settings) { s.clock = c }
}

// WithTables loads the store from tables instead of the configured seed.
func WithTables(t memdb.Tables) Option {
	return func(s *settings) { s.tables = &t }
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(cfg config.Config, logger *zap.Logger, opts ...Option) (*ServiceOptions, error) {
	var st settings
	for _, opt := range opts {
		opt(&st)
	}

	// 1. Load the record store
	tables, err := loadTables(cfg, st.tables)
	if err != nil {
		return nil, err
	}
	db := memdb.New(tables)
	logger.Debug("record store loaded",
		zap.Int("brands", len(tables.Brands)),
		zap.Int("programs", len(tables.Programs)),
	)

	// 2. Create infrastructure components
	clk := st.clock
	if clk == nil {
		clk = clock.NewSystemClock()
	}
	comm := memdb.NewCommitter(db)

	brandIDs, err := idgen.ForStrategy(cfg.IDStrategy, BrandIDPrefix)
	if err != nil {
		return nil, err
	}
	programIDs, err := idgen.ForStrategy(cfg.IDStrategy, ProgramIDPrefix)
	if err != nil {
		return nil, err
	}
	eventIDs, err := idgen.ForStrategy(cfg.IDStrategy, EventIDPrefix)
	if err != nil {
		return nil, err
	}

	formatter, err := format.New(cfg.Currency)
	if err != nil {
		return nil, err
	}

	// 3. Create repositories
	brandRepo := repo.NewBrandRepo(db)
	programRepo := repo.NewProgramRepo(db)
	outboxRepo := repo.NewOutboxRepo(eventIDs)
	readModel := repo.NewReadModel(db)

	// 4. Create command use cases (write operations)
	createBrand := create_brand.NewInteractor(brandRepo, outboxRepo, readModel, comm, clk, brandIDs, logger)
	updateBrand := update_brand.NewInteractor(brandRepo, outboxRepo, readModel, comm, clk, logger)
	deleteBrand := delete_brand.NewInteractor(brandRepo, programRepo, outboxRepo, readModel, comm, clk, cfg.DeletePolicy, logger)
	createProgram := create_program.NewInteractor(programRepo, brandRepo, outboxRepo, readModel, comm, clk, programIDs, logger)
	updateProgram := update_program.NewInteractor(programRepo, brandRepo, outboxRepo, readModel, comm, clk, logger)
	deleteProgram := delete_program.NewInteractor(programRepo, outboxRepo, readModel, comm, clk, logger)

	// 5. Create query use cases (read operations)
	return &ServiceOptions{
		DB:        db,
		Clock:     clk,
		Formatter: formatter,
		Logger:    logger,

		CreateBrand:   createBrand,
		UpdateBrand:   updateBrand,
		DeleteBrand:   deleteBrand,
		CreateProgram: createProgram,
		UpdateProgram: updateProgram,
		DeleteProgram: deleteProgram,

		ListBrands:       list_brands.NewQuery(readModel),
		ListPrograms:     list_programs.NewQuery(readModel),
		DashboardSummary: dashboard_summary.NewQuery(readModel),
		ProgramBoard:     program_board.NewQuery(readModel, clk),
		ProgramDetail:    program_detail.NewQuery(readModel, clk),
		ListEvents:       list_events.NewQuery(readModel),

		brandHandler:   editflow.NewBrandHandler(brandRepo, createBrand, updateBrand),
		programHandler: editflow.NewProgramHandler(programRepo, createProgram, updateProgram),
	}, nil
}

// BrandFlow opens a new edit flow for brands.
func (s *ServiceOptions) BrandFlow() *editflow.Flow[domain.Brand] {
	return editflow.New[domain.Brand](s.brandHandler, s.Logger)
}

// ProgramFlow opens a new edit flow for programs.
func (s *ServiceOptions) ProgramFlow() *editflow.Flow[domain.Program] {
	return editflow.New[domain.Program](s.programHandler, s.Logger)
}

// Close flushes the logger.
func (s *ServiceOptions) Close() {
	if s.Logger != nil {
		_ = s.Logger.Sync()
	}
}

func loadTables(cfg config.Config, override *memdb.Tables) (memdb.Tables, error) {
	switch {
	case override != nil:
		return *override, nil
	case cfg.SeedPath != "":
		tables, err := repo.LoadSeedFile(cfg.SeedPath)
		if err != nil {
			return memdb.Tables{}, fmt.Errorf("failed to load seed: %w", err)
		}
		return tables, nil
	default:
		return repo.DefaultSeed()
	}
}
