package web

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"

	"github.com/fpang/ai-media-hub/internal/hub"
	"github.com/rs/zerolog/log"
)

var templateFuncs = template.FuncMap{
	"activeIf": func(a, b string) string {
		if a == b {
			return "active"
		}
		return ""
	},
}

// tabs in display order.
var tabs = []tabView{
	{ID: string(hub.ActionGenerate), Title: "Image Generator", Icon: "🎨"},
	{ID: string(hub.ActionCaption), Title: "Image Captioning", Icon: "✨"},
	{ID: string(hub.ActionSummarize), Title: "Video Summarizer", Icon: "🎬"},
}

type tabView struct {
	ID    string
	Title string
	Icon  string
}

type downloadView struct {
	Label    string `json:"label"`
	FileName string `json:"fileName"`
	MIMEType string `json:"mimeType"`
	URL      string `json:"url"`
}

type blockView struct {
	Kind     string        `json:"kind"`
	Heading  string        `json:"heading,omitempty"`
	Text     string        `json:"text,omitempty"`
	Tone     string        `json:"tone,omitempty"`
	Caption  string        `json:"caption,omitempty"`
	ImageURL string        `json:"imageUrl,omitempty"`
	Download *downloadView `json:"download,omitempty"`
}

type outcomeView struct {
	Action  string      `json:"action"`
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Blocks  []blockView `json:"blocks"`
}

type pageData struct {
	Tabs      []tabView
	ActiveTab string
	Prompt    string
	VideoURL  string
	Result    *outcomeView
}

// view stores the outcome's media in the artifact store and returns the
// renderable form of the outcome.
func (s *Server) view(out hub.Outcome) *outcomeView {
	v := &outcomeView{
		Action:  string(out.Action),
		Status:  out.Status.String(),
		Message: out.Message,
		Blocks:  make([]blockView, 0, len(out.Blocks)),
	}

	for _, b := range out.Blocks {
		bv := blockView{
			Kind:    string(b.Kind),
			Heading: b.Heading,
			Text:    b.Text,
			Tone:    string(b.Tone),
			Caption: b.Caption,
		}

		var shared string
		if b.Kind == hub.BlockImage {
			fileName := "image"
			if b.Download != nil {
				fileName = b.Download.FileName
			}
			a := s.store.Put(fileName, b.MIMEType, b.Data)
			bv.ImageURL = artifactURL(a.ID, false)
			if b.Download != nil && b.Download.MIMEType == b.MIMEType {
				shared = a.ID
			}
		}

		if d := b.Download; d != nil {
			id := shared
			if id == "" {
				id = s.store.Put(d.FileName, d.MIMEType, d.Data).ID
			}
			bv.Download = &downloadView{
				Label:    d.Label,
				FileName: d.FileName,
				MIMEType: d.MIMEType,
				URL:      artifactURL(id, true),
			}
		}

		v.Blocks = append(v.Blocks, bv)
	}
	return v
}

func artifactURL(id string, download bool) string {
	u := "/artifacts/" + url.PathEscape(id)
	if download {
		u += "?download=1"
	}
	return u
}

// renderPage executes the page template into a buffer first so a template
// error never produces a half-written page.
func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	data.Tabs = tabs
	if data.ActiveTab == "" {
		data.ActiveTab = string(hub.ActionGenerate)
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		log.Error().Err(err).Msg("Failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
