package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/upparakash/AspireBrandApi/auth"
	"github.com/upparakash/AspireBrandApi/catalog"
	"github.com/upparakash/AspireBrandApi/database"
)

var newAdmin catalog.AdminRegisterInput

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a back-office admin account",
	Long: `Create an admin account directly in the database. Use it for the first
admin; later ones can be registered through POST /api/auth/register.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := connect()
		if err != nil {
			return err
		}
		defer database.Close(db)

		admins := catalog.NewAdmins(catalog.NewGormAdminRepository(db), auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL))
		admin, err := admins.Register(cmd.Context(), newAdmin)
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		log.Printf("✅ Admin %d (%s) created", admin.ID, admin.Email)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&newAdmin.Name, "name", "", "Display name")
	createAdminCmd.Flags().StringVar(&newAdmin.Email, "email", "", "Login email")
	createAdminCmd.Flags().StringVar(&newAdmin.Password, "password", "", "Login password")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
}
