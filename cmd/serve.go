package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/satyajit2online/Load-Distribution/internal/report"
	"github.com/satyajit2online/Load-Distribution/internal/schedule"
	"github.com/satyajit2online/Load-Distribution/internal/server"
)

var (
	serveAddr  string
	serveModel string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the JSON API server",
	Long: `Start an HTTP server exposing the design engine:

  POST   /api/design          run the full design pipeline
  POST   /api/design/batch    design several beams in one call
  POST   /api/schedule        compute and save a named design
  GET    /api/schedule        list saved designs
  GET    /api/schedule/{id}   fetch one saved design
  DELETE /api/schedule/{id}   remove a saved design
  GET    /api/schedule/export download the schedule as XLSX
  POST   /api/report          natural-language report (needs GEMINI_API_KEY)
  POST   /api/report/pdf      PDF design summary

The saved-design schedule lives in memory for the lifetime of the
process. GEMINI_API_KEY is read from the environment or a .env file.`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Gemini model for report generation")
}

func runServe(cmd *cobra.Command, args []string) {
	// Optional; the report endpoint degrades to a fallback string
	// when no key is available.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(schedule.NewStore(), &report.GeminiGenerator{Model: serveModel})

	httpServer := &http.Server{
		Addr:    serveAddr,
		Handler: srv.Routes(),
	}

	go func() {
		log.Printf("Starting server on %s", serveAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error stopping server: %v", err)
	}
	log.Println("Server stopped")
}
