package integrity

import (
	"context"
	"errors"

	"hotel-indexer/core/cursor"
	"hotel-indexer/core/ledger"
	"hotel-indexer/core/mirror"
	"hotel-indexer/core/storage"
	"hotel-indexer/feature/favorite"
	"hotel-indexer/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoDatabase is returned by the schema check when the stores are not SQL.
var ErrNoDatabase = errors.New("schema check needs a SQL database")

// ErrNoStorage is returned by the storage checks when no client is configured.
var ErrNoStorage = errors.New("object storage is not configured")

// Options wires a Service. Every dependency is optional; the checks that
// need a missing one report it instead of running.
type Options struct {
	DB      *gorm.DB
	Storage storage.Client
	Bucket  string
	Region  string
	Ledger  ledger.Client
	Filter  ledger.EventFilter
	Logger  *zap.Logger
}

// Service handles integrity checks.
type Service struct {
	db      *gorm.DB
	storage storage.Client
	bucket  string
	region  string
	ledger  ledger.Client
	filter  ledger.EventFilter
	logger  *zap.Logger
}

// NewService creates a new integrity service.
func NewService(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:      opts.DB,
		storage: opts.Storage,
		bucket:  opts.Bucket,
		region:  opts.Region,
		ledger:  opts.Ledger,
		filter:  opts.Filter,
		logger:  logger,
	}
}

// SchemaModels lists every table the service owns.
func SchemaModels() []any {
	return append(mirror.Models(), &cursor.Cursor{}, &favorite.Favorite{})
}

// CheckSchema compares the SQL tables against the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckSchema(s.db, SchemaModels()...)
}

// FixSchema migrates every table the service owns.
func (s *Service) FixSchema(ctx context.Context) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	return s.db.WithContext(ctx).AutoMigrate(SchemaModels()...)
}

// CheckStorage reports on the image bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.storage == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckStorage(ctx, s.storage, s.bucket)
}

// FixStorage creates the image bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.storage == nil {
		return ErrNoStorage
	}
	return checks.FixStorage(ctx, s.storage, s.bucket, s.region, s.logger)
}

// CheckLedger reports whether the fullnode answers event queries.
func (s *Service) CheckLedger(ctx context.Context) *checks.LedgerReport {
	if s.ledger == nil {
		return &checks.LedgerReport{Error: "ledger client is not configured"}
	}
	return checks.CheckLedger(ctx, s.ledger, s.filter)
}
