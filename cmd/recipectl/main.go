package main

import (
	"fmt"
	"os"

	"github.com/recipebox/internal/config"
	"github.com/recipebox/internal/database"
	"github.com/recipebox/internal/seed"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "recipectl",
	Short: "recipebox administrative CLI",
	Long:  "recipectl manages the recipebox database: schema migration, sample data seeding, and data reset.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the configuration file")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(unseedCmd)
}

// bootDB loads config and opens the database connection.
func bootDB() (*gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return database.Connect(cfg)
}

// recipectl migrate
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		fmt.Println("Running migrations…")
		return database.AutoMigrate(db)
	},
}

// recipectl seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with food tags and sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		fmt.Println("Seeding…")
		return seed.NewSeeder(db).Seed()
	},
}

// recipectl unseed
var unseedCmd = &cobra.Command{
	Use:   "unseed",
	Short: "Delete all non-staff users and, via cascade, their recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}
		deleted, err := seed.NewSeeder(db).Unseed()
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d non-staff users\n", deleted)
		return nil
	},
}
