package hub

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/fpang/ai-media-hub/internal/gemini"
	"google.golang.org/genai"
)

func TestGenerateImage_EmptyPromptDoesNotCallService(t *testing.T) {
	for _, prompt := range []string{"", "   ", "\n\t"} {
		gen := &stubGenerator{}
		out := GenerateImage(t.Context(), gen, testModels, prompt)

		if gen.calls != 0 {
			t.Errorf("prompt %q: expected no service call, got %d", prompt, gen.calls)
		}
		if out.Status != StatusWarning {
			t.Errorf("prompt %q: expected warning, got %v", prompt, out.Status)
		}
		if out.Message != "Please enter a prompt" {
			t.Errorf("unexpected warning message: %q", out.Message)
		}
	}
}

func TestGenerateImage_RoundTrip(t *testing.T) {
	pngData := testPNG(t)
	gen := &stubGenerator{generateFunc: respondWith(
		&genai.Part{Text: "Generated:"},
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: pngData}},
	)}

	out := GenerateImage(t.Context(), gen, testModels, "a red circle on white background")

	if out.Status != StatusSuccess {
		t.Fatalf("expected success, got %v (%s)", out.Status, out.Message)
	}
	if gen.calls != 1 {
		t.Errorf("expected exactly one call, got %d", gen.calls)
	}
	if gen.lastModel != testModels.Image {
		t.Errorf("expected image model, got %q", gen.lastModel)
	}
	if gen.lastConfig == nil || len(gen.lastConfig.ResponseModalities) != 2 {
		t.Errorf("expected text+image modalities, got %+v", gen.lastConfig)
	}
	if got := gen.lastContents[0].Parts[0].Text; got != "a red circle on white background" {
		t.Errorf("prompt not forwarded: %q", got)
	}

	if len(out.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(out.Blocks))
	}
	if out.Blocks[0].Kind != BlockText || out.Blocks[0].Text != "Generated:" {
		t.Errorf("first block should be the text segment, got %+v", out.Blocks[0])
	}
	img := out.Blocks[1]
	if img.Kind != BlockImage {
		t.Fatalf("second block should be an image, got %v", img.Kind)
	}
	if !bytes.Equal(img.Data, pngData) {
		t.Error("rendered image bytes differ from returned bytes")
	}
	if _, _, err := image.Decode(bytes.NewReader(img.Data)); err != nil {
		t.Errorf("rendered image is not decodable: %v", err)
	}

	dl := img.Download
	if dl == nil {
		t.Fatal("expected a download for the generated image")
	}
	if dl.FileName != "generated.png" || dl.MIMEType != "image/png" {
		t.Errorf("unexpected download: %s %s", dl.FileName, dl.MIMEType)
	}
	if !bytes.Equal(dl.Data, pngData) {
		t.Error("download bytes differ from returned bytes")
	}
}

func TestGenerateImage_RendersAllSegmentsInOrder(t *testing.T) {
	pngData := testPNG(t)
	gen := &stubGenerator{generateFunc: respondWith(
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: pngData}},
		&genai.Part{Text: "one"},
		&genai.Part{Text: "two"},
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: pngData}},
		&genai.Part{Text: "three"},
	)}

	out := GenerateImage(t.Context(), gen, testModels, "prompt")

	want := []BlockKind{BlockImage, BlockText, BlockText, BlockImage, BlockText}
	if len(out.Blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d", len(want), len(out.Blocks))
	}
	var texts []string
	for i, b := range out.Blocks {
		if b.Kind != want[i] {
			t.Errorf("block %d: expected %v, got %v", i, want[i], b.Kind)
		}
		if b.Kind == BlockText {
			texts = append(texts, b.Text)
		}
	}
	if strings.Join(texts, ",") != "one,two,three" {
		t.Errorf("text order not preserved: %v", texts)
	}
	if len(out.Downloads()) != 2 {
		t.Errorf("expected one download per image, got %d", len(out.Downloads()))
	}
}

func TestGenerateImage_ServiceError(t *testing.T) {
	gen := &stubGenerator{generateFunc: failWith(errors.New("429 RESOURCE_EXHAUSTED"))}

	out := GenerateImage(t.Context(), gen, testModels, "prompt")

	if out.Status != StatusError {
		t.Fatalf("expected error outcome, got %v", out.Status)
	}
	if !strings.Contains(out.Message, "429 RESOURCE_EXHAUSTED") {
		t.Errorf("error message should contain the cause, got %q", out.Message)
	}
	if len(out.Blocks) != 0 {
		t.Errorf("no partial results expected, got %d blocks", len(out.Blocks))
	}
}

func TestGenerateImage_UndecodableImage(t *testing.T) {
	gen := &stubGenerator{generateFunc: respondWith(
		&genai.Part{Text: "Here you go"},
		&genai.Part{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("not an image")}},
	)}

	out := GenerateImage(t.Context(), gen, testModels, "prompt")

	if out.Status != StatusError {
		t.Fatalf("expected error outcome, got %v", out.Status)
	}
	if len(out.Blocks) != 0 {
		t.Errorf("no partial results expected, got %d blocks", len(out.Blocks))
	}
}

func TestGenerateImage_NoCandidates(t *testing.T) {
	gen := &stubGenerator{generateFunc: func(string, []*genai.Content) gemini.Result {
		return gemini.Success(&genai.GenerateContentResponse{})
	}}

	out := GenerateImage(t.Context(), gen, testModels, "prompt")
	if out.Status != StatusError {
		t.Errorf("expected error outcome for empty response, got %v", out.Status)
	}
}
