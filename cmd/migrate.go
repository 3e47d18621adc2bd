package cmd

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var (
	migrateDir  string
	migrateDown bool
)

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Apply database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		url := databaseURL()
		m, err := migrate.New("file://"+migrateDir, url)
		if err != nil {
			fmt.Printf("migrate: %v\n", err)
			os.Exit(1)
		}
		defer m.Close()

		if migrateDown {
			err = m.Steps(-1)
		} else {
			err = m.Up()
		}
		if err != nil && err != migrate.ErrNoChange {
			fmt.Printf("migrate: %v\n", err)
			os.Exit(1)
		}
		if err == migrate.ErrNoChange {
			fmt.Println("Database already up to date.")
			return
		}
		fmt.Println("Migrations applied.")
	},
}

// databaseURL builds the migrate URL from the same env the server uses.
func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return "mysql://" + dsn
	}
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "ashwi.db"
	}
	return "sqlite://" + path
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateDir, "dir", "d", "migrations", "Migrations directory")
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll back the last migration instead")
	rootCmd.AddCommand(migrateCmd)
}
