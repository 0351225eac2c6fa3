// Package store persists teams and races in Postgres.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/midoshouse/midos.house-sub000/internal/engine"
	"github.com/midoshouse/midos.house-sub000/internal/presenter"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrRaceExists = errors.New("race already exists")
	// ErrStaleDraft means the stored draft is further along than the one
	// being saved, so another writer got there first.
	ErrStaleDraft = errors.New("stored draft is newer")
)

const uniqueViolation = "23505"

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open connects to Postgres.
func Open(dsn string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return New(db, log), nil
}

func New(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Team{}, &Race{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) SaveTeam(ctx context.Context, t Team) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "plural", "hard_settings_ok", "mq_ok"}),
	}).Create(&t).Error
	if err != nil {
		return fmt.Errorf("save team %s: %w", t.ID, err)
	}
	return nil
}

func (s *Store) Teams(ctx context.Context) ([]Team, error) {
	var teams []Team
	if err := s.db.WithContext(ctx).Order("name").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *Store) team(ctx context.Context, id string) (Team, error) {
	var t Team
	err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Team{}, fmt.Errorf("team %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Team{}, fmt.Errorf("team %s: %w", id, err)
	}
	return t, nil
}

// Team resolves a team's display name for rich presenters.
func (s *Store) Team(ctx context.Context, id engine.TeamID) (presenter.TeamInfo, error) {
	t, err := s.team(ctx, string(id))
	if err != nil {
		return presenter.TeamInfo{}, err
	}
	return presenter.TeamInfo{Name: t.Name, Plural: t.Plural}, nil
}

// Eligibility is what a pairing of teams has agreed to play.
func (s *Store) Eligibility(ctx context.Context, a, b engine.TeamID) (engine.Eligibility, error) {
	ta, err := s.team(ctx, string(a))
	if err != nil {
		return engine.Eligibility{}, err
	}
	tb, err := s.team(ctx, string(b))
	if err != nil {
		return engine.Eligibility{}, err
	}
	return eligibility(ta, tb), nil
}

func eligibility(a, b Team) engine.Eligibility {
	return engine.Eligibility{
		HardSettingsOK: a.HardSettingsOK && b.HardSettingsOK,
		MQOK:           a.MQOK && b.MQOK,
	}
}

func (s *Store) CreateRace(ctx context.Context, r *Race) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("race %s: %w", r.ID, ErrRaceExists)
		}
		return fmt.Errorf("create race %s: %w", r.ID, err)
	}
	s.log.Info("race created", zap.Stringer("race", r.ID), zap.String("kind", r.Kind))
	return nil
}

func (s *Store) Race(ctx context.Context, id uuid.UUID) (Race, error) {
	var r Race
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Race{}, fmt.Errorf("race %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Race{}, fmt.Errorf("race %s: %w", id, err)
	}
	return r, nil
}

// WithRaceLocked runs fn in a transaction holding the race row lock.
func (s *Store) WithRaceLocked(ctx context.Context, id uuid.UUID, fn func(tx *gorm.DB, r *Race) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r Race
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&r, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("race %s: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("lock race %s: %w", id, err)
		}
		return fn(tx, &r)
	})
}

// SaveDraft stores d unless the stored draft already has more slots played.
func (s *Store) SaveDraft(ctx context.Context, id uuid.UUID, d engine.Draft) error {
	return s.WithRaceLocked(ctx, id, func(tx *gorm.DB, r *Race) error {
		kind, err := r.DraftKind()
		if err != nil {
			return err
		}
		if stale(kind, r.Draft.Draft, d) {
			return fmt.Errorf("race %s: %w", id, ErrStaleDraft)
		}
		return tx.Model(r).Update("draft", DraftColumn{d}).Error
	})
}

// stale reports whether saving next would move stored backwards.
func stale(kind engine.Kind, stored, next engine.Draft) bool {
	if stored.WentFirst != nil && next.WentFirst == nil {
		return true
	}
	return stored.PickCount(kind) > next.PickCount(kind)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
