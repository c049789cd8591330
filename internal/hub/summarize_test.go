package hub

import (
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestSummarizeVideo_EmptyURLDoesNotCallService(t *testing.T) {
	for _, u := range []string{"", "  "} {
		gen := &stubGenerator{}
		out := SummarizeVideo(t.Context(), gen, testModels, u)

		if gen.calls != 0 {
			t.Errorf("url %q: expected no call, got %d", u, gen.calls)
		}
		if out.Status != StatusWarning {
			t.Errorf("url %q: expected warning, got %v", u, out.Status)
		}
	}
}

func TestSummarizeVideo_Success(t *testing.T) {
	const (
		videoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
		summary  = "A music video."
	)
	gen := &stubGenerator{generateFunc: respondWith(&genai.Part{Text: summary})}

	out := SummarizeVideo(t.Context(), gen, testModels, videoURL)

	if out.Status != StatusSuccess {
		t.Fatalf("expected success, got %v (%s)", out.Status, out.Message)
	}
	if gen.lastModel != testModels.Video {
		t.Errorf("expected video model, got %q", gen.lastModel)
	}
	parts := gen.lastContents[0].Parts
	if parts[0].Text != SummaryInstruction {
		t.Errorf("expected fixed instruction, got %q", parts[0].Text)
	}
	if parts[1].FileData == nil || parts[1].FileData.FileURI != videoURL {
		t.Errorf("expected file reference to the URL, got %+v", parts[1].FileData)
	}

	dls := out.Downloads()
	if len(dls) != 1 || dls[0].FileName != "summary.txt" || dls[0].MIMEType != "text/plain" {
		t.Fatalf("unexpected downloads: %+v", dls)
	}
	if string(dls[0].Data) != summary {
		t.Errorf("download should hold the exact summary, got %q", dls[0].Data)
	}
}

func TestSummarizeVideo_NoLocalURLValidation(t *testing.T) {
	gen := &stubGenerator{generateFunc: respondWith(&genai.Part{Text: "?"})}

	out := SummarizeVideo(t.Context(), gen, testModels, "not a url at all")

	if gen.calls != 1 {
		t.Errorf("any non-empty URL goes to the service, got %d calls", gen.calls)
	}
	if out.Status != StatusSuccess {
		t.Errorf("expected success, got %v", out.Status)
	}
}

func TestSummarizeVideo_ServiceError(t *testing.T) {
	gen := &stubGenerator{generateFunc: failWith(errors.New("dial tcp: no such host"))}

	out := SummarizeVideo(t.Context(), gen, testModels, "https://youtu.be/x")

	if out.Status != StatusError || out.Message != "Error: dial tcp: no such host" {
		t.Errorf("unexpected outcome: %v %q", out.Status, out.Message)
	}
}
