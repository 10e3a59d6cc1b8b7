package cli

import (
	"fmt"
	"io"

	"github.com/nkzrv/cyberdeck/internal/console"
	"github.com/nkzrv/cyberdeck/internal/domain"
)

// RenderOutcome prints one dispatched command's result the way it would
// appear in the deck transcript. Cleared and reloaded outcomes print a short
// acknowledgement since a one-shot run has no screen to clear.
func RenderOutcome(out io.Writer, outcome console.Outcome) {
	switch outcome.Directive {
	case console.DirectiveClear:
		fmt.Fprintln(out, "transcript cleared")
		return
	case console.DirectiveReload:
		fmt.Fprintln(out, "console reloaded")
		return
	}
	if outcome.Entry == nil {
		return
	}
	RenderEntry(out, *outcome.Entry)
}

// RenderEntry prints a transcript entry, prompt line first.
func RenderEntry(out io.Writer, entry domain.TranscriptEntry) {
	fmt.Fprintf(out, "> %s\n", entry.RawInput)
	for _, line := range entry.Output {
		fmt.Fprintln(out, line)
	}
}
