package gemini

import (
	"errors"
	"strings"

	"google.golang.org/genai"
)

// SegmentKind distinguishes the parts of a multi-part response.
type SegmentKind int

const (
	// SegmentText is a text part.
	SegmentText SegmentKind = iota
	// SegmentBinary is an inline binary part (image bytes).
	SegmentBinary
)

// Segment is one part of a model response.
type Segment struct {
	Kind     SegmentKind
	Text     string
	Data     []byte
	MIMEType string
}

// Result is the outcome of a Generate call: either a response or an error.
type Result struct {
	resp *genai.GenerateContentResponse
	err  error
}

// Success wraps a response.
func Success(resp *genai.GenerateContentResponse) Result {
	return Result{resp: resp}
}

// Failure wraps a call error.
func Failure(err error) Result {
	if err == nil {
		err = errors.New("unknown Gemini error")
	}
	return Result{err: err}
}

// Err returns the call error, or nil on success.
func (r Result) Err() error {
	return r.err
}

// Response returns the raw response, nil on failure.
func (r Result) Response() *genai.GenerateContentResponse {
	return r.resp
}

// Segments returns every part of the first candidate, in order.
// Thought parts and parts that are neither text nor inline data are skipped.
func (r Result) Segments() ([]Segment, error) {
	content, err := r.firstContent()
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(content.Parts))
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		switch {
		case part.InlineData != nil:
			segments = append(segments, Segment{
				Kind:     SegmentBinary,
				Data:     part.InlineData.Data,
				MIMEType: part.InlineData.MIMEType,
			})
		case part.Text != "":
			segments = append(segments, Segment{Kind: SegmentText, Text: part.Text})
		}
	}
	return segments, nil
}

// Text returns the concatenated text of the first candidate.
func (r Result) Text() (string, error) {
	content, err := r.firstContent()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil && !part.Thought {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("empty response: model returned no text")
	}
	return sb.String(), nil
}

func (r Result) firstContent() (*genai.Content, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.resp == nil || len(r.resp.Candidates) == 0 {
		return nil, errors.New("no candidates in response")
	}
	candidate := r.resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		if candidate != nil && candidate.FinishReason != "" && candidate.FinishReason != genai.FinishReasonStop {
			return nil, errors.New("response has no content (finish reason: " + string(candidate.FinishReason) + ")")
		}
		return nil, errors.New("response has no content")
	}
	return candidate.Content, nil
}
