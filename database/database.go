package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rpupo63/electronics-site-backend/config"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// Database implements Storage by embedding one repository per entity, all
// sharing a single GORM connection pool.
type Database struct {
	*UserRepo
	*CategoryRepo
	*BlogPostRepo
	*ProjectRepo
	*ContactRepo
	*NewsletterRepo
	*MediaRepo
	*AnalyticsRepo

	db *gorm.DB
}

var _ Storage = (*Database)(nil)

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) *Database {
	return &Database{
		UserRepo:       NewUserRepo(db),
		CategoryRepo:   NewCategoryRepo(db),
		BlogPostRepo:   NewBlogPostRepo(db),
		ProjectRepo:    NewProjectRepo(db),
		ContactRepo:    NewContactRepo(db),
		NewsletterRepo: NewNewsletterRepo(db),
		MediaRepo:      NewMediaRepo(db),
		AnalyticsRepo:  NewAnalyticsRepo(db),
		db:             db,
	}
}

// Migrate creates or updates the tables for every model.
func (d *Database) Migrate(ctx context.Context) error {
	return d.db.WithContext(ctx).AutoMigrate(models.All()...)
}

// Ping checks that the primary connection is usable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Open connects to Postgres using DATABASE_URL. When DATABASE_REPLICA_URL is
// set, reads outside transactions are routed to the replica.
func Open(ctx context.Context, c map[string]string) (*gorm.DB, error) {
	dsn := config.GetString(c, "DATABASE_URL", "")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	gormLog := log.With().Str("component", "gorm").Logger()
	newLogger := logger.New(
		&gormLog,
		logger.Config{
			SlowThreshold:             config.GetSeconds(c, "DB_SLOW_QUERY_SECONDS", 2*time.Second),
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt:    false,
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	maxOpen := config.GetInt(c, "DB_MAX_OPEN_CONNS", 25)
	maxIdle := config.GetInt(c, "DB_MAX_IDLE_CONNS", 5)
	maxLifetime := config.GetSeconds(c, "DB_MAX_LIFETIME_SECONDS", 5*time.Minute)

	if replica := config.GetString(c, "DATABASE_REPLICA_URL", ""); replica != "" {
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.New(postgres.Config{DSN: replica, PreferSimpleProtocol: true})},
			Policy:   dbresolver.RandomPolicy{},
		}).
			SetMaxOpenConns(maxOpen).
			SetMaxIdleConns(maxIdle).
			SetConnMaxLifetime(maxLifetime)
		if err := db.Use(resolver); err != nil {
			return nil, fmt.Errorf("error registering read replica: %w", err)
		}
		log.Info().Msg("Read replica registered")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("error testing database connection: %w", err)
	}

	log.Info().Int("max_open_conns", maxOpen).Msg("Database connection established")
	return db, nil
}
