// Command migrate applies, rolls back and inspects the schema migrations for
// the whatsapp-automation database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ankur09868/whatsapp-automation/internal/infrastructure/migrate"
)

const defaultMigrationsPath = "./migrations"

func main() {
	var migrationsPath string
	flag.StringVar(&migrationsPath, "path", defaultMigrationsPath, "Path to migrations directory")
	flag.Parse()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("Please specify a command: up, down, or version")
	}

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: migrationsPath,
	})

	switch command := args[0]; command {
	case "up":
		if err := runner.Run(); err != nil {
			log.Fatalf("Failed to run migrations up: %v", err)
		}
		reportVersion(runner, "Successfully migrated")

	case "down":
		if err := runner.Rollback(); err != nil {
			log.Fatalf("Failed to run migrations down: %v", err)
		}
		reportVersion(runner, "Successfully rolled back")

	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			log.Fatalf("Failed to get version: %v", err)
		}
		if dirty {
			fmt.Printf("Current version: %d (dirty)\n", version)
		} else {
			fmt.Printf("Current version: %d\n", version)
		}

	default:
		log.Fatalf("Unknown command: %s. Use 'up', 'down', or 'version'", command)
	}
}

func reportVersion(runner *migrate.Runner, action string) {
	version, dirty, err := runner.Version()
	switch {
	case err != nil:
		log.Printf("Error getting migration version: %v", err)
	case dirty:
		log.Printf("WARNING: Database is in dirty state at version %d", version)
	case version == 0:
		log.Printf("%s; no migrations applied", action)
	default:
		log.Printf("%s to version %d", action, version)
	}
}
