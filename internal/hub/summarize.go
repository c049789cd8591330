package hub

import (
	"context"
	"strings"
	"time"

	"github.com/fpang/ai-media-hub/internal/gemini"
	"github.com/rs/zerolog/log"
)

// SummaryInstruction is the fixed instruction sent with every video URL.
const SummaryInstruction = "Summarize this video:"

// Download names for the video summarization panel.
const (
	SummaryFileName = "summary.txt"
	SummaryMIMEType = "text/plain"
)

// SummarizeVideo asks the video model to summarize the video at videoURL.
// The URL is passed through as a file reference; whether it points at a
// reachable video is for the service to decide.
func SummarizeVideo(ctx context.Context, gen gemini.Generator, models gemini.Models, videoURL string) Outcome {
	videoURL = strings.TrimSpace(videoURL)
	if videoURL == "" {
		return warning(ActionSummarize, "Please enter a valid YouTube URL")
	}

	start := time.Now()
	log.Ctx(ctx).Info().Str("model", models.Video).Str("url", videoURL).Msg("Summarizing video")

	result := gen.Generate(ctx, models.Video, gemini.SummaryRequest(SummaryInstruction, videoURL), nil)
	text, err := result.Text()
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Dur("duration", time.Since(start)).Msg("Video summarization failed")
		return failure(ActionSummarize, err)
	}

	log.Ctx(ctx).Info().
		Int("summary_length", len(text)).
		Dur("duration", time.Since(start)).
		Msg("Video summarization complete")

	return Outcome{
		Action: ActionSummarize,
		Status: StatusSuccess,
		Blocks: []Block{{
			Kind:    BlockText,
			Heading: "Video Summary",
			Text:    text,
			Tone:    ToneInfo,
			Download: &Download{
				Label:    "Download Summary",
				FileName: SummaryFileName,
				MIMEType: SummaryMIMEType,
				Data:     []byte(text),
			},
		}},
	}
}
