package hub

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fpang/ai-media-hub/internal/gemini"
	"github.com/rs/zerolog/log"
)

// Download names for the image generation panel.
const (
	GeneratedImageFileName = "generated.png"
	GeneratedImageMIMEType = "image/png"
)

// GenerateImage asks the image model to answer a prompt with text and
// images. Every returned segment is rendered in order: text segments as
// text, binary segments as images with a download.
func GenerateImage(ctx context.Context, gen gemini.Generator, models gemini.Models, prompt string) Outcome {
	if strings.TrimSpace(prompt) == "" {
		return warning(ActionGenerate, "Please enter a prompt")
	}

	start := time.Now()
	log.Ctx(ctx).Info().
		Str("model", models.Image).
		Int("prompt_length", len(prompt)).
		Msg("Generating image")

	contents, config := gemini.ImageGenerationRequest(prompt)
	result := gen.Generate(ctx, models.Image, contents, config)

	segments, err := result.Segments()
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Dur("duration", time.Since(start)).Msg("Image generation failed")
		return failure(ActionGenerate, err)
	}

	blocks := make([]Block, 0, len(segments))
	images := 0
	for i, seg := range segments {
		switch seg.Kind {
		case gemini.SegmentText:
			blocks = append(blocks, Block{Kind: BlockText, Text: seg.Text, Tone: TonePlain})

		case gemini.SegmentBinary:
			mimeType, cfg, err := decodeImage(seg.Data)
			if err != nil {
				log.Ctx(ctx).Warn().Err(err).Int("segment", i).Str("mime", seg.MIMEType).Msg("Returned image is not decodable")
				return failure(ActionGenerate, fmt.Errorf("segment %d: %w", i, err))
			}
			log.Ctx(ctx).Debug().
				Int("segment", i).
				Str("mime", mimeType).
				Int("width", cfg.Width).
				Int("height", cfg.Height).
				Int("bytes", len(seg.Data)).
				Msg("Decoded generated image")

			blocks = append(blocks, Block{
				Kind:     BlockImage,
				Data:     seg.Data,
				MIMEType: mimeType,
				Download: &Download{
					Label:    "Download Image",
					FileName: GeneratedImageFileName,
					MIMEType: GeneratedImageMIMEType,
					Data:     seg.Data,
				},
			})
			images++
		}
	}

	log.Ctx(ctx).Info().
		Int("segments", len(segments)).
		Int("images", images).
		Dur("duration", time.Since(start)).
		Msg("Image generation complete")

	return Outcome{Action: ActionGenerate, Status: StatusSuccess, Blocks: blocks}
}
