package main

import (
	"context"
	"fmt"
	"time"

	api "github.com/rpupo63/electronics-site-backend/api"
	"github.com/rpupo63/electronics-site-backend/auth"
	"github.com/rpupo63/electronics-site-backend/blobstore"
	"github.com/rpupo63/electronics-site-backend/config"
	"github.com/rpupo63/electronics-site-backend/database"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/rpupo63/electronics-site-backend/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func openDatabase(ctx context.Context, cfg map[string]string) (*database.Database, error) {
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return database.New(db), nil
}

func newServeCmd(cfg map[string]string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the schema and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("error migrating schema: %w", err)
			}

			secret, err := config.ResolveJWTSecret(ctx, cfg, nil)
			if err != nil {
				return err
			}

			blobs, err := newBlobStore(ctx, cfg)
			if err != nil {
				return err
			}

			server, err := api.NewServer(cfg, api.Dependencies{
				Storage:  store,
				Gate:     auth.NewGate(store, secret),
				Blobs:    blobs,
				Notifier: services.NewNotifier(cfg),
			})
			if err != nil {
				return fmt.Errorf("error initializing server: %w", err)
			}

			errChannel := make(chan error, 2)
			go server.Start(errChannel)

			// Listen for interrupt signals to gracefully shutdown the server
			go listenToInterrupt(errChannel)

			fatalErr := <-errChannel
			log.Info().Msgf("Closing server: %v", fatalErr)

			server.ShutdownGracefully(shutdownTimeout)
			return nil
		},
	}
}

// newBlobStore uses S3 when MEDIA_BUCKET is set and a local directory otherwise.
func newBlobStore(ctx context.Context, cfg map[string]string) (blobstore.Store, error) {
	if bucket := config.GetString(cfg, "MEDIA_BUCKET", ""); bucket != "" {
		awsCfg, err := config.LoadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info().Str("bucket", bucket).Msg("Storing media in S3")
		return blobstore.NewS3Store(awsCfg, bucket, config.GetString(cfg, "MEDIA_PUBLIC_BASE_URL", "")), nil
	}

	dir := config.GetString(cfg, "MEDIA_DIR", "./uploads")
	log.Info().Str("dir", dir).Msg("Storing media on local disk")
	return blobstore.NewDiskStore(dir, config.GetString(cfg, "MEDIA_PUBLIC_BASE_URL", "/media"))
}

func newMigrateCmd(cfg map[string]string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(cmd.Context()); err != nil {
				return fmt.Errorf("error migrating schema: %w", err)
			}
			log.Info().Msg("Schema is up to date")
			return nil
		},
	}
}

func newGenerateCmd(cfg map[string]string) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate typed query helpers and report column mismatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			return models.GenerateModels(db, outPath)
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "./generated", "output directory for generated code")
	return cmd
}

func newCreateAdminCmd(cfg map[string]string) *cobra.Command {
	var username, email, name, password, role string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a user that can sign in to the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("error migrating schema: %w", err)
			}

			user, err := createAdmin(ctx, store, username, email, name, password, role)
			if err != nil {
				return err
			}
			log.Info().Str("userID", user.ID.String()).Str("username", user.Username).Msg("User created")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name (required)")
	cmd.Flags().StringVar(&email, "email", "", "e-mail address (required)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&password, "password", "", "plaintext password (required)")
	cmd.Flags().StringVar(&role, "role", models.RoleAdmin, "role stored on the user")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func createAdmin(ctx context.Context, store database.Storage, username, email, name, password, role string) (*models.User, error) {
	if existing, err := store.GetUserByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errs.NewAlreadyExists("User")
	}
	if existing, err := store.GetUserByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, errs.NewAlreadyExists("User")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = username
	}

	user := &models.User{Username: username, Email: email, Name: name, Password: hash, Role: role}
	if err := store.CreateUser(ctx, user); err != nil {
		return nil, errs.NewDatabaseError("create", "User", err)
	}
	return user, nil
}
