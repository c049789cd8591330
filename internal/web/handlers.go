package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/fpang/ai-media-hub/internal/hub"
	"github.com/rs/zerolog/log"
)

// GET /?tab=...
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, pageData{ActiveTab: validTab(r.URL.Query().Get("tab"))})
}

// POST /generate (form: prompt)
func (s *Server) handleGenerateForm(w http.ResponseWriter, r *http.Request) {
	prompt := r.FormValue("prompt")
	out := s.runGenerate(r, prompt)
	s.renderPage(w, http.StatusOK, pageData{
		ActiveTab: string(hub.ActionGenerate),
		Prompt:    prompt,
		Result:    s.view(out),
	})
}

// POST /caption (multipart: image)
func (s *Server) handleCaptionForm(w http.ResponseWriter, r *http.Request) {
	upload, err := s.readUpload(w, r)
	if err != nil {
		s.renderPage(w, http.StatusBadRequest, pageData{
			ActiveTab: string(hub.ActionCaption),
			Result:    &outcomeView{Action: string(hub.ActionCaption), Status: hub.StatusWarning.String(), Message: err.Error()},
		})
		return
	}

	out := s.runCaption(r, upload)
	s.renderPage(w, http.StatusOK, pageData{
		ActiveTab: string(hub.ActionCaption),
		Result:    s.view(out),
	})
}

// POST /summarize (form: url)
func (s *Server) handleSummarizeForm(w http.ResponseWriter, r *http.Request) {
	videoURL := r.FormValue("url")
	out := s.runSummarize(r, videoURL)
	s.renderPage(w, http.StatusOK, pageData{
		ActiveTab: string(hub.ActionSummarize),
		VideoURL:  videoURL,
		Result:    s.view(out),
	})
}

// POST /reset clears the UI cache. The Gemini client is untouched.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	dropped := s.store.Len()
	s.store.Purge()
	log.Ctx(r.Context()).Info().Int("artifacts", dropped).Msg("UI state reset")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type summarizeRequest struct {
	URL string `json:"url"`
}

// POST /api/generate
// Body: {"prompt": "a red circle on white background"}
func (s *Server) handleGenerateAPI(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.respondOutcome(w, s.runGenerate(r, req.Prompt))
}

// POST /api/caption (multipart: image)
func (s *Server) handleCaptionAPI(w http.ResponseWriter, r *http.Request) {
	upload, err := s.readUpload(w, r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.respondOutcome(w, s.runCaption(r, upload))
}

// POST /api/summarize
// Body: {"url": "https://www.youtube.com/watch?v=..."}
func (s *Server) handleSummarizeAPI(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.respondOutcome(w, s.runSummarize(r, req.URL))
}

// respondOutcome maps warnings to 400 and call errors to 502.
func (s *Server) respondOutcome(w http.ResponseWriter, out hub.Outcome) {
	status := http.StatusOK
	switch out.Status {
	case hub.StatusWarning:
		status = http.StatusBadRequest
	case hub.StatusError:
		status = http.StatusBadGateway
	}
	respondJSON(w, status, s.view(out))
}

// GET /artifacts/{id}[?download=1]
func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	a, ok := s.store.Get(r.PathValue("id"))
	if !ok {
		httpError(w, http.StatusNotFound, "artifact not found")
		return
	}

	w.Header().Set("Content-Type", a.MIMEType)
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Data)))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.Header().Set("Last-Modified", a.Created.UTC().Format(http.TimeFormat))
	if r.URL.Query().Get("download") == "1" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.FileName))
	} else {
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", a.FileName))
	}
	w.Write(a.Data)
}

// readUpload returns the "image" file of a multipart form, or nil when no
// file was sent.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*hub.Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("image is too large (limit %d MB)", s.maxUpload>>20)
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid upload: %w", err)
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return &hub.Upload{Name: header.Filename, Data: data}, nil
}

func validTab(tab string) string {
	for _, t := range tabs {
		if t.ID == tab {
			return tab
		}
	}
	return string(hub.ActionGenerate)
}
