// Command initdb applies database/init.sql and seeds the admin and demo accounts.
package main

import (
	"log/slog"
	"os"

	"storefront/config"
	"storefront/database"
	"storefront/internal/domain/service"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/persistence/mysql"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type seedAccount struct {
	username string
	email    string
	password string
	isAdmin  bool
}

var seedAccounts = []seedAccount{
	{username: "admin", email: "admin@example.com", password: "admin123", isAdmin: true},
	{username: "johndoe", email: "john@example.com", password: "password123"},
	{username: "janedoe", email: "jane@example.com", password: "password123"},
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("Database initialization failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("Database initialization completed successfully")
}

func run(cfg *config.Config, log *slog.Logger) error {
	db, err := mysql.Open(cfg.MySQL, mysql.NewGormLogger(log, logger.Warn))
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	defer sqlDB.Close()

	users, err := buildSeedUsers(auth.NewBcryptHasher(cfg))
	if err != nil {
		return err
	}

	// MySQL commits DDL implicitly; the seed inserts still roll back together.
	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range database.Statements() {
			if err := tx.Exec(stmt).Error; err != nil {
				return errors.Wrapf(err, "execute %.50q", stmt)
			}
			log.Debug("Executed statement", slog.String("sql", truncate(stmt, 50)))
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&users).Error; err != nil {
			return errors.Wrap(err, "seed users")
		}

		return nil
	})
}

func buildSeedUsers(hasher service.PasswordHasher) ([]model.UserModel, error) {
	users := make([]model.UserModel, 0, len(seedAccounts))
	for _, account := range seedAccounts {
		hash, err := hasher.Hash(account.password)
		if err != nil {
			return nil, errors.Wrapf(err, "hash password for %s", account.username)
		}

		users = append(users, model.UserModel{
			Username:     account.username,
			Email:        account.email,
			PasswordHash: hash,
			IsAdmin:      account.isAdmin,
			IsActive:     true,
		})
	}

	return users, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
