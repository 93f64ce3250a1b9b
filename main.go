package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/coreybb/subscan/advisor"
	"github.com/coreybb/subscan/analysis"
	"github.com/coreybb/subscan/api"
	"github.com/coreybb/subscan/export"
	"github.com/coreybb/subscan/gmailscan"
	"github.com/coreybb/subscan/mailfile"
	"github.com/coreybb/subscan/models"
	"github.com/coreybb/subscan/report"
)

const (
	defaultPort        = "8080"
	defaultDaysBack    = 365
	defaultMaxResults  = 500
	defaultCredentials = "credentials.json"
	defaultTokenFile   = "token.json"
	shutdownTimeout    = 15 * time.Second
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN (Main): could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "subscan",
		Usage: "audit recurring subscription charges found in your email",
		Commands: []*cli.Command{
			{
				Name:  "scan",
				Usage: "scan a mailbox and report detected subscriptions",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "days",
						Usage: "how far back to search, in days",
						Value: defaultDaysBack,
					},
					&cli.Int64Flag{
						Name:  "max-results",
						Usage: "maximum messages to fetch per query",
						Value: defaultMaxResults,
					},
					&cli.StringFlag{
						Name:  "credentials",
						Usage: "path to the Gmail OAuth client credentials file",
						Value: defaultCredentials,
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "path to the cached OAuth token",
						Value: defaultTokenFile,
					},
					&cli.StringFlag{
						Name:  "eml-dir",
						Usage: "read .eml files from this directory instead of Gmail",
					},
					&cli.StringFlag{
						Name:  "export",
						Usage: "write subscription records to this CSV file",
					},
					&cli.BoolFlag{
						Name:  "no-advisor",
						Usage: "skip per-message analysis even when an API key is set",
					},
				},
				Action: runScan,
			},
			{
				Name:  "serve",
				Usage: "run the scan analysis as an HTTP service",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "port",
						Usage: "port to listen on",
						Value: defaultPort,
					},
				},
				Action: runServe,
			},
		},
		DefaultCommand: "scan",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("ERROR (Main): %v", err)
	}
}

func runScan(c *cli.Context) error {
	ctx := c.Context

	messages, err := loadMessages(ctx, c)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		fmt.Println("No subscription-related messages found.")
		return nil
	}

	annotateMessages(ctx, c, messages)

	builder := analysis.NewBuilder()
	records := builder.Build(messages)
	summary := analysis.Summarize(records, time.Now().UTC())

	report.Render(os.Stdout, records, summary)

	if path := c.String("export"); path != "" {
		if !strings.HasSuffix(path, ".csv") {
			path += ".csv"
		}
		if err := export.WriteCSVFile(path, records); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		log.Printf("INFO (Main): exported %d records to %s", len(records), path)
	}
	return nil
}

func loadMessages(ctx context.Context, c *cli.Context) ([]models.EmailMessage, error) {
	if dir := c.String("eml-dir"); dir != "" {
		return mailfile.NewSource(dir).Messages()
	}

	service, err := gmailscan.NewService(ctx, c.String("credentials"), c.String("token"))
	if err != nil {
		return nil, fmt.Errorf("gmail setup failed: %w", err)
	}
	scanner := gmailscan.NewScanner(service)
	return scanner.Scan(ctx, c.Int("days"), c.Int64("max-results"))
}

// annotateMessages runs the advisor over each message when an API key is
// configured. Annotation failures are logged and skipped: the scan report
// does not depend on them.
func annotateMessages(ctx context.Context, c *cli.Context, messages []models.EmailMessage) {
	if c.Bool("no-advisor") || os.Getenv("ANTHROPIC_API_KEY") == "" {
		return
	}

	adv := advisor.NewAdvisor()
	annotated := 0
	for i := range messages {
		if err := adv.Annotate(ctx, &messages[i]); err != nil {
			log.Printf("WARN (Main): %v", err)
			continue
		}
		annotated++
	}
	log.Printf("INFO (Main): annotated %d of %d messages", annotated, len(messages))
}

func runServe(c *cli.Context) error {
	scanHandler := api.NewScanHandler(analysis.NewBuilder())
	router := api.SetupRoutes(scanHandler)
	startServer(c.String("port"), router)
	return nil
}

func startServer(port string, router http.Handler) {
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownSignal // Block until signal received
	log.Println("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server gracefully stopped")
}
