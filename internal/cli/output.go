package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fpang/ai-media-hub/internal/hub"
	"github.com/rs/zerolog/log"
)

// ErrNothingToDo is returned for an idle outcome.
var ErrNothingToDo = errors.New("nothing to do: no input was provided")

// OutcomeError turns a warning or error outcome into an error carrying the
// user-facing message. Success returns nil.
func OutcomeError(out hub.Outcome) error {
	switch out.Status {
	case hub.StatusSuccess:
		return nil
	case hub.StatusIdle:
		return ErrNothingToDo
	default:
		return errors.New(out.Message)
	}
}

// PrintText writes every text block of the outcome to w, headings first.
func PrintText(w io.Writer, out hub.Outcome) {
	for _, b := range out.Blocks {
		if b.Kind != hub.BlockText {
			continue
		}
		if b.Heading != "" {
			fmt.Fprintf(w, "\n## %s\n\n", b.Heading)
		}
		fmt.Fprintln(w, b.Text)
	}
}

// DownloadNames assigns file names to downloads. A name that occurs more
// than once is numbered from 1: generated-1.png, generated-2.png.
func DownloadNames(downloads []hub.Download) []string {
	counts := make(map[string]int, len(downloads))
	for _, d := range downloads {
		counts[d.FileName]++
	}

	seen := make(map[string]int, len(downloads))
	names := make([]string, len(downloads))
	for i, d := range downloads {
		if counts[d.FileName] == 1 {
			names[i] = d.FileName
			continue
		}
		seen[d.FileName]++
		ext := filepath.Ext(d.FileName)
		names[i] = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(d.FileName, ext), seen[d.FileName], ext)
	}
	return names
}

// WriteDownloads writes the outcome's downloads into dir with their exact
// bytes and returns the written paths.
func WriteDownloads(dir string, out hub.Outcome) ([]string, error) {
	downloads := out.Downloads()
	names := DownloadNames(downloads)

	paths := make([]string, 0, len(downloads))
	for i, d := range downloads {
		path := filepath.Join(dir, names[i])
		if err := os.WriteFile(path, d.Data, 0o644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", names[i], err)
		}
		log.Debug().Str("path", path).Str("mime", d.MIMEType).Int("bytes", len(d.Data)).Msg("Wrote download")
		paths = append(paths, path)
	}
	return paths, nil
}
