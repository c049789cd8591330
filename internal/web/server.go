// Package web serves the single-page UI and its JSON API.
//
// Every POST runs exactly one hub action synchronously and renders its
// Outcome. The only state the server keeps is the artifact store holding
// rendered media; the reset control purges it.
package web

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/fpang/ai-media-hub/internal/artifacts"
	"github.com/fpang/ai-media-hub/internal/gemini"
	"github.com/fpang/ai-media-hub/internal/hub"
	"github.com/klauspost/compress/gzhttp"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// DefaultMaxUploadBytes caps captioning uploads.
const DefaultMaxUploadBytes = 20 << 20

// Options configures a Server.
type Options struct {
	Generator      gemini.Generator
	Models         gemini.Models
	Store          *artifacts.Store
	MaxUploadBytes int64
}

// Server is the UI shell.
type Server struct {
	gen       gemini.Generator
	models    gemini.Models
	store     *artifacts.Store
	maxUpload int64
	page      *template.Template
	handler   http.Handler
}

// NewServer builds the server and its routes.
func NewServer(opts Options) (*Server, error) {
	page, err := template.New("index.html").Funcs(templateFuncs).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	if opts.Store == nil {
		opts.Store = artifacts.NewStore(artifacts.DefaultCapacity, artifacts.DefaultTTL)
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}

	s := &Server{
		gen:       opts.Generator,
		models:    opts.Models,
		store:     opts.Store,
		maxUpload: opts.MaxUploadBytes,
		page:      page,
	}

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Page and form actions
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /generate", s.handleGenerateForm)
	mux.HandleFunc("POST /caption", s.handleCaptionForm)
	mux.HandleFunc("POST /summarize", s.handleSummarizeForm)
	mux.HandleFunc("POST /reset", s.handleReset)

	// JSON API
	mux.HandleFunc("POST /api/generate", s.handleGenerateAPI)
	mux.HandleFunc("POST /api/caption", s.handleCaptionAPI)
	mux.HandleFunc("POST /api/summarize", s.handleSummarizeAPI)

	mux.HandleFunc("GET /artifacts/{id}", s.handleArtifact)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.handler = withLogging(withSecurityHeaders(gzhttp.GzipHandler(mux)))
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// callContext detaches the service call from the request: a call in flight
// runs to completion even if the browser goes away.
func callContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func (s *Server) runGenerate(r *http.Request, prompt string) hub.Outcome {
	return hub.GenerateImage(callContext(r), s.gen, s.models, prompt)
}

func (s *Server) runCaption(r *http.Request, upload *hub.Upload) hub.Outcome {
	return hub.CaptionImage(callContext(r), s.gen, s.models, upload)
}

func (s *Server) runSummarize(r *http.Request, videoURL string) hub.Outcome {
	return hub.SummarizeVideo(callContext(r), s.gen, s.models, videoURL)
}
