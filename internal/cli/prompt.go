package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// PromptForText asks for a single line of input on stdout and reads it from
// in. Returns an empty string on EOF.
func PromptForText(in io.Reader, label string) string {
	fmt.Fprintf(os.Stdout, "%s: ", label)

	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		log.Warn().Err(err).Msg("Failed to read input")
		return ""
	}

	return strings.TrimSpace(input)
}
