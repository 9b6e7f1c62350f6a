package cmd

import (
	"context"
	"fmt"

	"hotel-indexer/core/config"
	"hotel-indexer/core/cursor"
	"hotel-indexer/core/database"
	"hotel-indexer/core/indexer"
	"hotel-indexer/core/ledger"
	"hotel-indexer/core/logger"
	coremongo "hotel-indexer/core/mongo"
	"hotel-indexer/core/mirror"
	"hotel-indexer/core/reconcile"
	"hotel-indexer/feature/favorite"
	"hotel-indexer/feature/hotel"
	"hotel-indexer/feature/reservation"
	"hotel-indexer/feature/review"
	"hotel-indexer/feature/room"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps holds the connections shared by every command.
type deps struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	mongo   *mongo.Client
	mirror  mirror.Store
	cursors cursor.Store
	ledger  *ledger.SuiClient
}

// loadDeps reads the configuration, connects the configured store and
// migrates it, and builds the fullnode client.
func loadDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	d := &deps{cfg: cfg, logger: logg}

	if !cfg.Database.IsValidDriver() {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if err := d.connectStore(ctx); err != nil {
		d.close()
		return nil, err
	}
	logg.Info("Connected to mirror database", zap.String("driver", cfg.Database.Driver))

	if d.ledger, err = ledger.NewSuiClient(cfg.Ledger); err != nil {
		d.close()
		return nil, err
	}

	return d, nil
}

// connectStore opens the configured database and migrates the mirror,
// the cursor table and, on SQL, the favourites.
func (d *deps) connectStore(ctx context.Context) error {
	if d.cfg.Database.IsSQL() {
		db, err := database.Connect(d.cfg.Database)
		if err != nil {
			return err
		}
		d.db = db
		mirrorStore := mirror.NewGormStore(db)
		cursorStore := cursor.NewGormStore(db)
		d.mirror, d.cursors = mirrorStore, cursorStore

		if err := mirrorStore.Migrate(ctx); err != nil {
			return err
		}
		if err := cursorStore.Migrate(ctx); err != nil {
			return err
		}
		return favorite.NewService(db, d.logger).Migrate(ctx)
	}

	client, mdb, err := coremongo.Connect(ctx, d.cfg.Database)
	if err != nil {
		return err
	}
	d.mongo = client
	mirrorStore := mirror.NewMongoStore(mdb)
	cursorStore := cursor.NewMongoStore(mdb)
	d.mirror, d.cursors = mirrorStore, cursorStore

	if err := mirrorStore.Migrate(ctx); err != nil {
		return err
	}
	return cursorStore.Migrate(ctx)
}

func (d *deps) filter() ledger.EventFilter {
	return ledger.EventFilter{Package: d.cfg.Ledger.PackageID, Module: d.cfg.Ledger.Module}
}

// newRunner wires the handler families, the dispatcher and the runner.
func (d *deps) newRunner() (*indexer.Runner, error) {
	dispatcher, err := reconcile.NewDispatcher(reconcile.Handlers{
		Hotels:       hotel.NewReconciler(d.ledger, d.mirror, d.logger),
		Rooms:        room.NewReconciler(d.ledger, d.mirror, d.logger),
		Reservations: reservation.NewReconciler(d.ledger, d.mirror, d.logger),
		Reviews:      review.NewReconciler(d.ledger, d.mirror, d.logger),
	}, d.logger)
	if err != nil {
		return nil, err
	}

	return indexer.NewRunner(indexer.Options{
		Config:     d.cfg.Indexer,
		Filter:     d.filter(),
		Ledger:     d.ledger,
		Cursors:    d.cursors,
		Dispatcher: dispatcher,
		Logger:     d.logger,
	})
}

func (d *deps) close() {
	if d.db != nil {
		if sqlDB, err := d.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if d.mongo != nil {
		_ = d.mongo.Disconnect(context.Background())
	}
	_ = d.logger.Sync()
}
