package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fpang/ai-media-hub/internal/artifacts"
	"github.com/fpang/ai-media-hub/internal/cli"
	"github.com/fpang/ai-media-hub/internal/gemini"
	"github.com/fpang/ai-media-hub/internal/logging"
	"github.com/fpang/ai-media-hub/internal/web"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// CLI flags
var (
	portFlag             int
	imageModelFlag       string
	visionModelFlag      string
	videoModelFlag       string
	validateKeyFlag      bool
	artifactTTLFlag      time.Duration
	artifactCapacityFlag int
)

var rootCmd = &cobra.Command{
	Use:   "media-hub",
	Short: "Web UI for Gemini image generation, captioning and video summaries",
	Long: `Media Hub starts a local web server with three panels backed by Gemini:
generate an image from a prompt, caption an uploaded image, and summarize a
YouTube video. The same actions are available as subcommands.

The API key is read from GEMINI_API_KEY or a .env file in the working directory.

Examples:
  media-hub
  media-hub --port 9090 --validate-key
  media-hub generate -p "a red circle on white background" -o ./out
  media-hub caption -i photo.jpg
  media-hub summarize -u https://www.youtube.com/watch?v=...`,
	Run: runServe,
}

func init() {
	defaults := gemini.DefaultModels()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&imageModelFlag, "image-model", defaults.Image, "Gemini model for image generation")
	pf.StringVar(&visionModelFlag, "vision-model", defaults.Vision, "Gemini model for image captioning")
	pf.StringVar(&videoModelFlag, "video-model", defaults.Video, "Gemini model for video summaries")
	pf.BoolVar(&validateKeyFlag, "validate-key", false, "Check the API key with a minimal call before starting")

	rootCmd.Flags().IntVar(&portFlag, "port", 8080, "Port to listen on")
	rootCmd.Flags().DurationVar(&artifactTTLFlag, "artifact-ttl", artifacts.DefaultTTL, "How long rendered images and downloads stay available")
	rootCmd.Flags().IntVar(&artifactCapacityFlag, "artifact-capacity", artifacts.DefaultCapacity, "Maximum number of cached images and downloads")

	rootCmd.AddCommand(generateCmd, captionCmd, summarizeCmd)
}

func main() {
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func models() gemini.Models {
	return gemini.Models{
		Image:  imageModelFlag,
		Vision: visionModelFlag,
		Video:  videoModelFlag,
	}
}

func runServe(cmd *cobra.Command, args []string) {
	start := time.Now()
	logging.Init()

	ctx := context.Background()
	m := models()
	client := cli.InitGeminiClient(ctx, m, validateKeyFlag)

	store := artifacts.NewStore(artifactCapacityFlag, artifactTTLFlag)
	server, err := web.NewServer(web.Options{
		Generator: client,
		Models:    m,
		Store:     store,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build web server")
	}

	addr := fmt.Sprintf(":%d", portFlag)
	srv := &http.Server{
		Addr:              addr,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      10 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("Shutdown did not complete cleanly")
		}
	}()

	logging.NewStartupLogger("media-hub").
		Version(version).
		Model("image", m.Image).
		Model("vision", m.Vision).
		Model("video", m.Video).
		Feature("validateKey", validateKeyFlag).
		Feature("gzip", true).
		Config("port", strconv.Itoa(portFlag)).
		Config("artifactTTL", artifactTTLFlag.String()).
		Config("artifactCapacity", strconv.Itoa(artifactCapacityFlag)).
		InitDuration(time.Since(start)).
		Log()

	fmt.Printf("\n  AI Media Hub: http://localhost:%d\n\n", portFlag)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
