package colleges

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/rosterwatch/cmd/common"
	"github.com/jonesrussell/rosterwatch/internal/catalog"
)

var seedFile string

// seedCommand returns the colleges seed subcommand.
func seedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the college catalog from a conferences file",
		RunE:  runSeed,
	}

	cmd.Flags().StringVar(&seedFile, "file", "conferences.json", "conferences JSON file")

	return cmd
}

// runSeed executes the seed subcommand.
func runSeed(cmd *cobra.Command, _ []string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	conferences, err := catalog.LoadConferences(seedFile)
	if err != nil {
		return err
	}

	repos, err := common.OpenRepositories(deps)
	if err != nil {
		return err
	}
	defer repos.Close()

	seeder := catalog.NewSeeder(repos.Colleges, deps.Logger)
	inserted, err := seeder.Seed(cmd.Context(), conferences)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	deps.Logger.Info("Catalog seeded", "inserted", inserted)
	return nil
}
