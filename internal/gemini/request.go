package gemini

import "google.golang.org/genai"

// Response modalities for image generation.
const (
	ModalityText  = "TEXT"
	ModalityImage = "IMAGE"
)

// ImageGenerationRequest builds the contents and config for a text prompt
// that should be answered with text and image parts.
func ImageGenerationRequest(prompt string) ([]*genai.Content, *genai.GenerateContentConfig) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{ModalityText, ModalityImage},
	}
	return genai.Text(prompt), config
}

// CaptionRequest builds the contents for a question about an inline image.
func CaptionRequest(question string, image []byte, mimeType string) []*genai.Content {
	parts := []*genai.Part{
		genai.NewPartFromText(question),
		genai.NewPartFromBytes(image, mimeType),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

// SummaryRequest builds the contents for an instruction about remote media
// referenced by URI. The media is never downloaded locally.
func SummaryRequest(instruction, fileURI string) []*genai.Content {
	parts := []*genai.Part{
		{Text: instruction},
		{FileData: &genai.FileData{FileURI: fileURI}},
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}
