package hub

import (
	"context"
	"time"

	"github.com/fpang/ai-media-hub/internal/gemini"
	"github.com/rs/zerolog/log"
)

// CaptionQuestion is the fixed question sent with every uploaded image.
const CaptionQuestion = "What is in this image?"

// Download names for the captioning panel.
const (
	CaptionFileName = "caption.txt"
	CaptionMIMEType = "text/plain"
)

// Upload is an image file submitted by the user.
type Upload struct {
	Name string
	Data []byte
}

// CaptionImage asks the vision model what is in the uploaded image.
// A nil or empty upload is inert: no call, no message.
func CaptionImage(ctx context.Context, gen gemini.Generator, models gemini.Models, upload *Upload) Outcome {
	if upload == nil || len(upload.Data) == 0 {
		return idle(ActionCaption)
	}
	if !acceptedCaptionExtension(upload.Name) {
		return warning(ActionCaption, "Please upload a PNG, JPG or JPEG image")
	}

	mimeType, cfg, err := decodeImage(upload.Data)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("file", upload.Name).Msg("Rejected upload")
		return warning(ActionCaption, "The uploaded file is not a valid image")
	}

	preview := Block{
		Kind:     BlockImage,
		Data:     upload.Data,
		MIMEType: mimeType,
		Caption:  "Uploaded Image",
	}

	start := time.Now()
	log.Ctx(ctx).Info().
		Str("model", models.Vision).
		Str("mime", mimeType).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("bytes", len(upload.Data)).
		Msg("Generating caption")

	result := gen.Generate(ctx, models.Vision, gemini.CaptionRequest(CaptionQuestion, upload.Data, mimeType), nil)
	text, err := result.Text()
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Dur("duration", time.Since(start)).Msg("Caption generation failed")
		return failure(ActionCaption, err)
	}

	log.Ctx(ctx).Info().
		Int("caption_length", len(text)).
		Dur("duration", time.Since(start)).
		Msg("Caption generation complete")

	return Outcome{
		Action: ActionCaption,
		Status: StatusSuccess,
		Blocks: []Block{
			preview,
			{
				Kind:    BlockText,
				Heading: "Caption",
				Text:    text,
				Tone:    ToneSuccess,
				Download: &Download{
					Label:    "Download Caption",
					FileName: CaptionFileName,
					MIMEType: CaptionMIMEType,
					Data:     []byte(text),
				},
			},
		},
	}
}
