package app

import (
	"gig-marketplace-api/config"
	"gig-marketplace-api/internal/controller"
	"gig-marketplace-api/internal/notify"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/service"
	"gig-marketplace-api/pkg/http_server"
	"gig-marketplace-api/pkg/postgres"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
)

func runMigrations(postgresDB *postgres.Postgres, sourceUrl string) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{})
	if err != nil {
		log.Fatal(err)
	}

	migrations, err := migrate.NewWithDatabaseInstance(sourceUrl, "postgres", driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrations.Up(); err != nil {
		if err.Error() == "no change" {
			log.Println("no change made by migration scripts")
		} else {
			log.Fatal(err)
		}
	}
}

func Run() {
	cfg := config.NewConfig()

	log.Println("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		log.Fatal("Error occurred while connecting to db: ", err)
	}
	defer postgresDB.Close()

	if err := postgresDB.Database.Ping(); err != nil {
		log.Fatal("Database is unreachable: ", err)
	}

	log.Println("Running migrations...")
	runMigrations(postgresDB, cfg.MigrationsDir)

	repositories := repo.NewRepositories(postgresDB)
	hub := notify.NewHub()
	services := service.NewServices(repositories, hub)
	handler := echo.New()

	log.Println("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, hub)

	log.Println("Starting server...")
	httpServer := http_server.New(handler, cfg.ServerAddress)

	log.Println("Ready to process requests...")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.Fatal("Notify error: ", err)
	}

	log.Println("Shutting down...")
	err = httpServer.Shutdown()
	if err != nil {
		log.Fatal("Shutdown error: ", err)
	} else {
		log.Println("Successful shutdown")
	}
}
