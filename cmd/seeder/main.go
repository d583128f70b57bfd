package main

import (
	"flag"
	"os"

	"github.com/QaEldaniz/futureup-academy-sub002/internal/config"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/database"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/models"
	"github.com/QaEldaniz/futureup-academy-sub002/internal/seeds"
	"github.com/QaEldaniz/futureup-academy-sub002/pkg/logger"
)

func main() {
	demo := flag.Bool("demo", false, "also seed demo students and a course")
	flag.Parse()

	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	database.Connect()

	if err := database.DB.AutoMigrate(
		&models.Student{},
		&models.Course{},
		&models.Enrollment{},
		&models.XPTransaction{},
		&models.Badge{},
		&models.StudentBadge{},
		&models.StudentActivity{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Database migration failed")
	}

	if _, err := seeds.SeedBadges(); err != nil {
		logger.Fatal().Err(err).Msg("Badge seeding failed")
	}

	if *demo {
		if err := seeds.SeedDemoData(); err != nil {
			logger.Fatal().Err(err).Msg("Demo data seeding failed")
		}
	}

	logger.Info().Msg("Seeding complete")
}
