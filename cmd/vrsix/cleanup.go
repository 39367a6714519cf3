package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-vrs/cleanup"
)

func cleanupCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove the database's .db-shm and .db-wal side files",
		Long: `Remove the shared-memory and write-ahead-log files SQLite leaves next to
the database. Missing files are ignored. Only run this once no process holds
the database open.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if err := cleanup.Tempfiles(cfg.DBURL); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleaned %s\n", cfg.DBURL)
			return nil
		},
	}
}
