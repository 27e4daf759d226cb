package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"inventory/config"
	"inventory/internal/domain/lifecycle"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/infra/auth"
	logs "inventory/internal/infra/log"
	"inventory/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Supported subcommands:
// - up:        Apply every pending migration
// - rollback:  Revert the most recent migration
// - superadmin: Create the first SuperAdmin account

// superAdminPasswordEnv keeps the password out of the process list.
const superAdminPasswordEnv = "INVENTORY_SUPERADMIN_PASSWORD"

type migrateDeps struct {
	DB       *gorm.DB
	Logger   *slog.Logger
	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
}

func main() {
	superAdminCmd := flag.NewFlagSet("superadmin", flag.ExitOnError)
	superAdminUsername := superAdminCmd.String("username", "", "Username of the SuperAdmin account")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	if err := run(os.Args[1], superAdminCmd, superAdminUsername); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, superAdminCmd *flag.FlagSet, username *string) error {
	var deps migrateDeps

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			auth.NewBcryptHasher,
		),
		fx.Populate(&deps.DB, &deps.Logger, &deps.UserRepo, &deps.Hasher),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build dependencies")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("Failed to stop", slog.Any("error", err))
		}
	}()

	switch command {
	case "up":
		if err := postgres.Migrate(deps.DB); err != nil {
			return err
		}
		deps.Logger.Info("Migrations applied")

		return nil
	case "rollback":
		if err := postgres.RollbackLast(deps.DB); err != nil {
			return err
		}
		deps.Logger.Info("Last migration rolled back")

		return nil
	case "superadmin":
		if err := superAdminCmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse superadmin flags")
		}

		return seedSuperAdmin(context.Background(), &deps, *username, os.Getenv(superAdminPasswordEnv))
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  up          Apply every pending migration")
	fmt.Println("  rollback    Revert the most recent migration")
	fmt.Println("  superadmin  Create a SuperAdmin (-username, password from " + superAdminPasswordEnv + ")")
}
