package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"tickethub/internal/infrastructure/auth"
	"tickethub/internal/infrastructure/config"
	"tickethub/internal/infrastructure/database"
	"tickethub/internal/infrastructure/persistence/migrations"
	"tickethub/internal/infrastructure/persistence/seeds"
	"tickethub/internal/shared/logger"
)

var (
	env      string
	skipSeed bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Create or update the database schema and seed the default manager account.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Skip seeding the default manager account")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()

	logger.Info("running migrations")
	if err := migrations.MigrateUserTables(db); err != nil {
		return fmt.Errorf("failed to migrate user tables: %w", err)
	}
	if err := migrations.MigrateTicketTables(db); err != nil {
		return fmt.Errorf("failed to migrate ticket tables: %w", err)
	}
	logger.Info("migrations completed")

	if skipSeed {
		return nil
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash("Admin@123")
	if err != nil {
		return fmt.Errorf("failed to hash default manager password: %w", err)
	}
	if err := seeds.SeedDefaultManager(db, hash); err != nil {
		return err
	}
	logger.Info("default manager account ready", "email", "admin@company.com")

	return nil
}
