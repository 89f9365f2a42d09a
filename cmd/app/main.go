package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"starwings/cmd"
	_ "starwings/docs"
	"starwings/internal/adapters/out/natsio"
	"starwings/internal/core/ports"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	notifier := createNotifier(configs, logger)
	defer func() {
		_ = notifier.Close()
	}()

	app, err := cmd.NewCompositionRoot(configs, gormDB, notifier)
	if err != nil {
		log.Fatalf("Error building composition root: %v", err)
	}

	if err = app.BootstrapAccessRegistry(context.Background(), configs.BootstrapPrincipal); err != nil {
		log.Fatalf("Error bootstrapping role registry: %v", err)
	}

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		NatsURL:            goDotEnvVariable("NATS_URL"),
		BootstrapPrincipal: goDotEnvVariable("BOOTSTRAP_PRINCIPAL"),
		FlightNamespace:    goDotEnvVariable("FLIGHT_NAMESPACE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
}

// createNotifier picks the event transport. Without a broker URL events are
// dropped on the floor, which is fine for local development.
func createNotifier(configs cmd.Config, logger *slog.Logger) ports.Notifier {
	if configs.NatsURL == "" {
		return natsio.NoopNotifier{}
	}
	notifier, err := natsio.NewNatsNotifier(configs.NatsURL, logger)
	if err != nil {
		log.Fatalf("Error connecting to NATS: %v", err)
	}
	return notifier
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
