package gridview

import "github.com/atotto/clipboard"

// Clipboard provides yank/paste integration.
//
// Errors never crash the UI; they are shown in the status line.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// SystemClipboard uses the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (SystemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

// Unsupported reports whether the platform has no clipboard utility.
func (SystemClipboard) Unsupported() bool { return clipboard.Unsupported }
