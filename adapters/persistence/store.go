package persistence

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/adapters/persistence/sqlite"
	"github.com/zthechelon/portfolio/internal/config"
	"github.com/zthechelon/portfolio/internal/domain/contact"
	"github.com/zthechelon/portfolio/internal/domain/education"
	"github.com/zthechelon/portfolio/internal/domain/experience"
	"github.com/zthechelon/portfolio/internal/domain/profile"
	"github.com/zthechelon/portfolio/internal/domain/project"
	"github.com/zthechelon/portfolio/internal/domain/seed"
	"github.com/zthechelon/portfolio/internal/domain/skill"
	"github.com/zthechelon/portfolio/pkg/logger"
)

// Store is the content store for the configured driver.
type Store struct {
	Profile     profile.Repository
	Experiences experience.Repository
	Education   education.Repository
	Projects    project.Repository
	Skills      skill.Repository
	Contacts    contact.Repository
	Seed        seed.Store

	close func()
}

func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStore connects to the configured database and brings its schema up to date.
func OpenStore(cfg config.Config, log logger.Logger) (*Store, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		if err := RunMigrations(cfg.DB.DSN, log); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		pool, err := NewPostgresPool(cfg, log)
		if err != nil {
			return nil, err
		}
		return &Store{
			Profile:     NewPostgresProfileRepo(pool, log),
			Experiences: NewPostgresExperienceRepo(pool, log),
			Education:   NewPostgresEducationRepo(pool, log),
			Projects:    NewPostgresProjectRepo(pool, log),
			Skills:      NewPostgresSkillRepo(pool, log),
			Contacts:    NewPostgresContactRepo(pool, log),
			Seed:        NewPostgresSeedStore(pool, log),
			close:       pool.Close,
		}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.DB.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info("Open SQLite store successfully.", zap.String("path", cfg.DB.SQLitePath))
		return &Store{
			Profile:     sqlite.NewProfileRepo(db),
			Experiences: sqlite.NewExperienceRepo(db),
			Education:   sqlite.NewEducationRepo(db),
			Projects:    sqlite.NewProjectRepo(db),
			Skills:      sqlite.NewSkillRepo(db),
			Contacts:    sqlite.NewContactRepo(db),
			Seed:        sqlite.NewSeedStore(db),
			close: func() {
				if err := db.Close(); err != nil {
					log.Warn("Failed to close SQLite store", zap.Error(err))
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DB.Driver)
	}
}
