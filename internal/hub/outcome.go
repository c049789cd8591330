// Package hub implements the three panel actions: image generation, image
// captioning and video summarization.
//
// Each action is a plain function invoked once per user action. It receives
// the Gemini client as an argument, makes at most one call, and returns an
// Outcome for the caller to render. Handlers never return errors: local
// validation problems become warnings and call failures become a single
// error message.
package hub

// Action identifies the panel that produced an outcome.
type Action string

const (
	ActionGenerate  Action = "generate"
	ActionCaption   Action = "caption"
	ActionSummarize Action = "summarize"
)

// Status is the terminal state of one action.
type Status int

const (
	// StatusIdle means nothing happened (no input to act on).
	StatusIdle Status = iota
	// StatusWarning is a local validation failure; no call was made.
	StatusWarning
	// StatusSuccess means the call succeeded and Blocks hold the result.
	StatusSuccess
	// StatusError means the call or response parsing failed.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusWarning:
		return "warning"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// BlockKind is the kind of rendered output.
type BlockKind string

const (
	BlockText  BlockKind = "text"
	BlockImage BlockKind = "image"
)

// Tone is the presentation hint for a text block.
type Tone string

const (
	TonePlain   Tone = "plain"
	ToneSuccess Tone = "success"
	ToneInfo    Tone = "info"
)

// Download is a one-click file offered next to a block.
type Download struct {
	Label    string
	FileName string
	MIMEType string
	Data     []byte
}

// Block is one rendered element of an outcome.
type Block struct {
	Kind     BlockKind
	Heading  string
	Text     string
	Tone     Tone
	Data     []byte // image bytes for BlockImage
	MIMEType string // image MIME type for BlockImage
	Caption  string
	Download *Download
}

// Outcome is what one action produced.
type Outcome struct {
	Action  Action
	Status  Status
	Message string
	Blocks  []Block
}

// Downloads returns every download offered by the outcome, in block order.
func (o Outcome) Downloads() []Download {
	var out []Download
	for _, b := range o.Blocks {
		if b.Download != nil {
			out = append(out, *b.Download)
		}
	}
	return out
}

func idle(action Action) Outcome {
	return Outcome{Action: action, Status: StatusIdle}
}

func warning(action Action, msg string) Outcome {
	return Outcome{Action: action, Status: StatusWarning, Message: msg}
}

// failure collapses every call error into the same user-facing message.
func failure(action Action, err error) Outcome {
	return Outcome{Action: action, Status: StatusError, Message: "Error: " + err.Error()}
}
