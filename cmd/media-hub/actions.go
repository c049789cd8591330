package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fpang/ai-media-hub/internal/cli"
	"github.com/fpang/ai-media-hub/internal/gemini"
	"github.com/fpang/ai-media-hub/internal/hub"
	"github.com/fpang/ai-media-hub/internal/logging"
	"github.com/spf13/cobra"
)

var (
	promptFlag    string
	imageFlag     string
	videoURLFlag  string
	outputDirFlag string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an image from a text prompt",
	Long: `Generate sends the prompt to the image model and writes every returned
image to the output directory. Text returned alongside the images is printed.

Examples:
  media-hub generate -p "a red circle on white background"
  media-hub generate -o ./out  # Interactive mode - prompts for the prompt`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var captionCmd = &cobra.Command{
	Use:   "caption",
	Short: "Describe a PNG or JPEG image",
	Args:  cobra.NoArgs,
	RunE:  runCaption,
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a YouTube video",
	Args:  cobra.NoArgs,
	RunE:  runSummarize,
}

func init() {
	generateCmd.Flags().StringVarP(&promptFlag, "prompt", "p", "", "Image description")
	captionCmd.Flags().StringVarP(&imageFlag, "image", "i", "", "Image file to caption (.png, .jpg, .jpeg)")
	summarizeCmd.Flags().StringVarP(&videoURLFlag, "url", "u", "", "YouTube video URL")
	_ = captionCmd.MarkFlagRequired("image")
	_ = summarizeCmd.MarkFlagRequired("url")

	for _, c := range []*cobra.Command{generateCmd, captionCmd, summarizeCmd} {
		c.Flags().StringVarP(&outputDirFlag, "output", "o", ".", "Directory for downloaded files")
		c.SilenceUsage = true
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	prompt := promptFlag
	if prompt == "" {
		prompt = cli.PromptForText(os.Stdin, "Prompt")
	}
	return runAction(cmd, func(ctx context.Context, a actionEnv) hub.Outcome {
		return hub.GenerateImage(ctx, a.client, a.models, prompt)
	})
}

func runCaption(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(imageFlag)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	upload := &hub.Upload{Name: filepath.Base(imageFlag), Data: data}
	return runAction(cmd, func(ctx context.Context, a actionEnv) hub.Outcome {
		return hub.CaptionImage(ctx, a.client, a.models, upload)
	})
}

func runSummarize(cmd *cobra.Command, args []string) error {
	return runAction(cmd, func(ctx context.Context, a actionEnv) hub.Outcome {
		return hub.SummarizeVideo(ctx, a.client, a.models, videoURLFlag)
	})
}

type actionEnv struct {
	client gemini.Generator
	models gemini.Models
}

// runAction builds the client, runs one action, prints its text and writes
// its downloads.
func runAction(cmd *cobra.Command, action func(context.Context, actionEnv) hub.Outcome) error {
	logging.Init()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	m := models()
	client := cli.InitGeminiClient(ctx, m, validateKeyFlag)

	start := time.Now()
	out := action(ctx, actionEnv{client: client, models: m})
	if err := cli.OutcomeError(out); err != nil {
		return err
	}

	cli.PrintText(cmd.OutOrStdout(), out)

	dir := cli.ResolveOutputDir(outputDirFlag)
	paths, err := cli.WriteDownloads(dir, out)
	if err != nil {
		return err
	}
	downloads := out.Downloads()
	for i, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%s)\n", p, cli.FormatSize(len(downloads[i].Data)))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Done in %s\n", cli.FormatDurationShort(time.Since(start)))
	return nil
}
