package hub

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/fpang/ai-media-hub/internal/gemini"
	"google.golang.org/genai"
)

// stubGenerator counts calls and answers with a canned Result.
type stubGenerator struct {
	calls        int
	lastModel    string
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig
	generateFunc func(model string, contents []*genai.Content) gemini.Result
}

func (s *stubGenerator) Generate(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) gemini.Result {
	s.calls++
	s.lastModel = model
	s.lastContents = contents
	s.lastConfig = config
	if s.generateFunc != nil {
		return s.generateFunc(model, contents)
	}
	return gemini.Failure(nil)
}

func respondWith(parts ...*genai.Part) func(string, []*genai.Content) gemini.Result {
	return func(string, []*genai.Content) gemini.Result {
		return gemini.Success(&genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
		})
	}
}

func failWith(err error) func(string, []*genai.Content) gemini.Result {
	return func(string, []*genai.Content) gemini.Result {
		return gemini.Failure(err)
	}
}

var testModels = gemini.Models{
	Image:  "image-model",
	Vision: "vision-model",
	Video:  "video-model",
}

// testPNG returns a small valid PNG: a red square on white.
func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.White)
		}
	}
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}
