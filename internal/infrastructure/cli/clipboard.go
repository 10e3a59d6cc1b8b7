package cli

import (
	"bytes"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/nkzrv/cyberdeck/internal/ports"
)

// Clipboard implements ports.Clipboard using platform-specific tools. The
// copy shortcut in the deck stays hidden when no tool is present.
type Clipboard struct{}

// NewClipboard builds the clipboard helper.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Enabled reports whether a clipboard tool is actually reachable.
func (c *Clipboard) Enabled() bool {
	switch runtime.GOOS {
	case "darwin":
		return true
	case "linux":
		return linuxClipboardTool() != nil
	default:
		return false
	}
}

// Copy copies text to the system clipboard.
func (c *Clipboard) Copy(text string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		cmd = linuxClipboardTool()
		if cmd == nil {
			return fmt.Errorf("clipboard utilities not found, install xclip or wl-copy")
		}
	default:
		return fmt.Errorf("clipboard not supported on %s", runtime.GOOS)
	}
	cmd.Stdin = bytes.NewBufferString(text)
	return cmd.Run()
}

func linuxClipboardTool() *exec.Cmd {
	if _, err := exec.LookPath("xclip"); err == nil {
		return exec.Command("xclip", "-selection", "clipboard")
	}
	if _, err := exec.LookPath("wl-copy"); err == nil {
		return exec.Command("wl-copy")
	}
	return nil
}

var _ ports.Clipboard = (*Clipboard)(nil)
