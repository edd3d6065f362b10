package main

import (
	"github.com/spf13/cobra"
	"github.com/upparakash/AspireBrandApi/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := connect()
		if err != nil {
			return err
		}
		defer database.Close(db)

		return database.Migrate(db)
	},
}
