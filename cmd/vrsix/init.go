package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-vrs/engine"
	"github.com/viant/sqlite-vrs/schema"
)

func initCmd(flags *globalFlags) *cobra.Command {
	var (
		foreignKeys bool
		journalMode string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the database and its tables if missing",
		Long: `Create the database file when it does not exist, then create the
file_uris and vrs_locations tables if they are missing. Running init on an
initialized database is a no-op.

Examples:
  vrsix init --db-url sqlite:///var/lib/vrs/index.sqlite
  vrsix init -c vrsix.yaml --journal-mode wal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			opts := cfg.EngineOptions()
			if cmd.Flags().Changed("foreign-keys") {
				opts = append(opts, engine.WithForeignKeys(foreignKeys))
			}
			if journalMode != "" {
				opts = append(opts, engine.WithJournalMode(journalMode))
			}
			if err := schema.Setup(cmd.Context(), cfg.DBURL, opts...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", cfg.DBURL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&foreignKeys, "foreign-keys", true, "Enforce foreign keys on the connection")
	cmd.Flags().StringVar(&journalMode, "journal-mode", "", "Journal mode pragma (delete, truncate, persist, memory, wal, off)")
	return cmd
}
