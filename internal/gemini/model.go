package gemini

import "os"

// Gemini Model IDs
//
// | Model Name                         | API Model ID                           | Use Case                 |
// |------------------------------------|----------------------------------------|--------------------------|
// | Gemini 2.0 Flash                   | gemini-2.0-flash                       | Captions, video summary  |
// | Gemini 2.0 Flash (image generation)| gemini-2.0-flash-exp-image-generation  | Text + image output      |
// | Gemini 2.5 Flash                   | gemini-2.5-flash                       | Stable, balanced         |
// | Gemini 2.5 Flash Image             | gemini-2.5-flash-image                 | Image generation/edit    |
const (
	// ModelGemini20Flash handles vision and video understanding.
	ModelGemini20Flash = "gemini-2.0-flash"

	// ModelGemini20FlashImageGen returns interleaved text and image parts.
	ModelGemini20FlashImageGen = "gemini-2.0-flash-exp-image-generation"

	// ModelGemini25Flash is stable, balanced performance.
	ModelGemini25Flash = "gemini-2.5-flash"

	// ModelGemini25FlashImage is the stable image generation model.
	ModelGemini25FlashImage = "gemini-2.5-flash-image"
)

const (
	// DefaultImageModel is used by the image generation panel.
	DefaultImageModel = ModelGemini20FlashImageGen

	// DefaultTextModel is used by the captioning and summarization panels.
	DefaultTextModel = ModelGemini20Flash
)

// Models names the model used by each panel.
type Models struct {
	Image  string // image generation
	Vision string // image captioning
	Video  string // video summarization
}

// DefaultModels resolves the models from the environment:
//   - GEMINI_IMAGE_MODEL overrides the image generation model
//   - GEMINI_MODEL overrides the captioning and summarization model
func DefaultModels() Models {
	text := envOr("GEMINI_MODEL", DefaultTextModel)
	return Models{
		Image:  envOr("GEMINI_IMAGE_MODEL", DefaultImageModel),
		Vision: text,
		Video:  text,
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
