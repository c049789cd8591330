package gemini

import (
	"bytes"
	"testing"

	"google.golang.org/genai"
)

func TestImageGenerationRequest(t *testing.T) {
	contents, config := ImageGenerationRequest("a red circle on white background")

	if len(contents) != 1 || len(contents[0].Parts) != 1 {
		t.Fatalf("expected one content with one part, got %+v", contents)
	}
	if contents[0].Parts[0].Text != "a red circle on white background" {
		t.Errorf("unexpected prompt part: %q", contents[0].Parts[0].Text)
	}
	if config == nil || len(config.ResponseModalities) != 2 {
		t.Fatalf("expected two response modalities, got %+v", config)
	}
	if config.ResponseModalities[0] != ModalityText || config.ResponseModalities[1] != ModalityImage {
		t.Errorf("unexpected modalities: %v", config.ResponseModalities)
	}
}

func TestCaptionRequest(t *testing.T) {
	img := []byte("jpeg-bytes")
	contents := CaptionRequest("What is in this image?", img, "image/jpeg")

	if len(contents) != 1 {
		t.Fatalf("expected one content, got %d", len(contents))
	}
	parts := contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("expected question and image parts, got %d", len(parts))
	}
	if parts[0].Text != "What is in this image?" {
		t.Errorf("unexpected question: %q", parts[0].Text)
	}
	if parts[1].InlineData == nil || !bytes.Equal(parts[1].InlineData.Data, img) || parts[1].InlineData.MIMEType != "image/jpeg" {
		t.Errorf("unexpected image part: %+v", parts[1].InlineData)
	}
	if contents[0].Role != string(genai.RoleUser) {
		t.Errorf("expected user role, got %q", contents[0].Role)
	}
}

func TestSummaryRequest(t *testing.T) {
	const uri = "https://www.youtube.com/watch?v=abc123"
	contents := SummaryRequest("Summarize this video:", uri)

	parts := contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("expected instruction and file parts, got %d", len(parts))
	}
	if parts[0].Text != "Summarize this video:" {
		t.Errorf("unexpected instruction: %q", parts[0].Text)
	}
	if parts[1].FileData == nil || parts[1].FileData.FileURI != uri {
		t.Errorf("expected file reference to %s, got %+v", uri, parts[1].FileData)
	}
	if parts[1].InlineData != nil {
		t.Error("video must be referenced by URI, not inlined")
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(t.Context(), Config{})
	if err != ErrNoAPIKey {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestDefaultModels(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GEMINI_IMAGE_MODEL", "")

	m := DefaultModels()
	if m.Image != DefaultImageModel || m.Vision != DefaultTextModel || m.Video != DefaultTextModel {
		t.Errorf("unexpected defaults: %+v", m)
	}

	t.Setenv("GEMINI_MODEL", ModelGemini25Flash)
	t.Setenv("GEMINI_IMAGE_MODEL", ModelGemini25FlashImage)

	m = DefaultModels()
	if m.Image != ModelGemini25FlashImage || m.Vision != ModelGemini25Flash || m.Video != ModelGemini25Flash {
		t.Errorf("env overrides not applied: %+v", m)
	}
}
