package scoreboard

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Run is one finished game
type Run struct {
	ID         uint      `gorm:"primaryKey"`
	StartedAt  time.Time `gorm:"index"`
	EndedAt    time.Time
	Score      int `gorm:"index"`
	Energy     int
	Reason     string
	Frames     uint64
	Spawned    int
	Hits       int
	Difficulty float64
	Seed       int64
}

// Duration returns the wall time of the run
func (r Run) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Store persists runs to a SQLite database
type Store struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// Open opens or creates the database at path; an empty path uses a private in-memory database
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open scoreboard %q: %w", path, err)
	}

	if path == "" {
		// in-memory databases are per-connection
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql interface: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, fmt.Errorf("failed to migrate scoreboard: %w", err)
	}

	log.Info().Str("path", path).Msg("Scoreboard opened")
	return &Store{db: db, logger: log}, nil
}

// Record inserts a finished run
func (s *Store) Record(ctx context.Context, run Run) error {
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	s.logger.Debug().Uint("id", run.ID).Int("score", run.Score).Msg("Run recorded")
	return nil
}

// Top returns the n best runs by score, earliest first on ties
func (s *Store) Top(ctx context.Context, n int) ([]Run, error) {
	var runs []Run
	err := s.db.WithContext(ctx).
		Order("score DESC").
		Order("ended_at ASC").
		Limit(n).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query top runs: %w", err)
	}
	return runs, nil
}

// Best returns the highest score recorded, 0 when empty
func (s *Store) Best(ctx context.Context) (int, error) {
	var best *int
	err := s.db.WithContext(ctx).Model(&Run{}).Select("MAX(score)").Scan(&best).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query best score: %w", err)
	}
	if best == nil {
		return 0, nil
	}
	return *best, nil
}

// Count returns the number of recorded runs
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Run{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

// Close releases the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}
