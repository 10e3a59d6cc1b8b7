package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptYesNo prints the question and waits for a y/yes answer. Anything
// else, including end of input, counts as no. Callers share one reader so
// buffered input is not lost between prompts.
func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

// promptLine asks for a single line of input, returning fallback when the
// answer is empty.
func promptLine(reader *bufio.Reader, out io.Writer, question, fallback string) string {
	fmt.Fprintf(out, "%s [%s]: ", question, fallback)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

// promptChoice asks until the answer passes validate, offering the fallback
// on an empty line. An unreadable input stream settles on the fallback.
func promptChoice(reader *bufio.Reader, out io.Writer, question, fallback string, validate func(string) bool) string {
	for {
		answer := promptLine(reader, out, question, fallback)
		if validate(answer) {
			return answer
		}
		if answer == fallback {
			return fallback
		}
		fmt.Fprintf(out, "  %q is not a valid choice\n", answer)
		if _, err := reader.Peek(1); err != nil {
			return fallback
		}
	}
}
