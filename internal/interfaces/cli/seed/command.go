package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	infraauth "helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/persistence/seeds"
	"helpdesk/internal/infrastructure/repository"
	"helpdesk/internal/shared/logger"
)

var (
	env  string
	sid  string
	name string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed initial data",
		Long: `Create an account with a freshly generated API key.
Re-running with an existing sid issues an additional key for that account,
so credentials can be rotated without downtime. The plain key is printed
once and never stored; only its hash is persisted.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&sid, "sid", "", "Account SID (required)")
	cmd.Flags().StringVar(&name, "name", "", "Account name (required)")
	cmd.MarkFlagRequired("sid")
	cmd.MarkFlagRequired("name")

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

	seeder := seeds.NewAccountSeeder(
		repository.NewAccountRepository(database.Get()),
		repository.NewAPIKeyRepository(database.Get()),
		infraauth.NewBcryptKeyHasher(cfg.Auth.BcryptCost),
		infraauth.GenerateAPIKey,
		logger.NewLogger(),
	)

	plainKey, err := seeder.Seed(context.Background(), sid, name)
	if err != nil {
		return err
	}

	fmt.Printf("account sid: %s\napi key:     %s\n\nstore the api key now; it cannot be recovered later\n", sid, plainKey)
	return nil
}
