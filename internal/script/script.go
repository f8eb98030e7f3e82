// Package script parses and runs line-oriented command scripts against a
// grid.Controller.
//
// One command per line:
//
//	select B2       move the cursor to a named cell
//	set TEXT        write TEXT verbatim to the cursor cell ("set" alone clears)
//	clear           clear the cursor cell
//	addrow          append a row
//	addcol          append a column
//	move DCOL DROW  shift the cursor, clamped to the grid
//
// Blank lines and lines starting with '#' are ignored.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/gridsheet/grid"
	"github.com/iw2rmb/gridsheet/sheet"
)

var ErrSyntax = errors.New("syntax error")

// Op identifies a script command.
type Op uint8

const (
	OpSelect Op = iota + 1
	OpSet
	OpClear
	OpAddRow
	OpAddCol
	OpMove
)

var opNames = map[string]Op{
	"select": OpSelect,
	"set":    OpSet,
	"clear":  OpClear,
	"addrow": OpAddRow,
	"addcol": OpAddCol,
	"move":   OpMove,
}

// Command is one parsed script line.
type Command struct {
	Line int
	Src  string
	Op   Op

	Pos  sheet.Pos // OpSelect
	Text string    // OpSet

	DCol, DRow int // OpMove
}

// Error reports a failed line. Err is ErrSyntax for parse failures or the
// controller error for rejected operations.
type Error struct {
	Line int
	Cmd  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Cmd, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func syntaxf(line int, src, format string, args ...any) error {
	return &Error{Line: line, Cmd: src, Err: fmt.Errorf("%w: "+format, append([]any{ErrSyntax}, args...)...)}
}

// Parse reads every command from r. It stops at the first malformed line.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		cmd, ok, err := ParseLine(line, sc.Text())
		if err != nil {
			return cmds, err
		}
		if ok {
			cmds = append(cmds, cmd)
		}
	}
	if err := sc.Err(); err != nil {
		return cmds, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

// splitWord splits s at its first whitespace rune. rest excludes that rune
// only, so "set  x" keeps the second space as part of the text.
func splitWord(s string) (word, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i], s[i+size:]
}

// ParseLine parses a single line. ok is false for blank and comment lines.
func ParseLine(line int, src string) (cmd Command, ok bool, err error) {
	src = strings.TrimRight(src, "\r")
	trimmed := strings.TrimLeftFunc(src, unicode.IsSpace)
	if strings.TrimSpace(trimmed) == "" || strings.HasPrefix(trimmed, "#") {
		return Command{}, false, nil
	}

	word, rest := splitWord(trimmed)
	op, known := opNames[strings.ToLower(word)]
	if !known {
		return Command{}, false, syntaxf(line, src, "unknown command %q", word)
	}
	cmd = Command{Line: line, Src: src, Op: op}
	args := strings.Fields(rest)

	switch op {
	case OpSet:
		cmd.Text = rest
	case OpSelect:
		if len(args) != 1 {
			return Command{}, false, syntaxf(line, src, "select takes one cell name")
		}
		p, err := sheet.ParseCellName(args[0])
		if err != nil {
			return Command{}, false, syntaxf(line, src, "%v", err)
		}
		cmd.Pos = p
	case OpMove:
		if len(args) != 2 {
			return Command{}, false, syntaxf(line, src, "move takes DCOL DROW")
		}
		dc, errC := strconv.Atoi(args[0])
		dr, errR := strconv.Atoi(args[1])
		if errC != nil || errR != nil {
			return Command{}, false, syntaxf(line, src, "move offsets must be integers")
		}
		cmd.DCol, cmd.DRow = dc, dr
	default:
		if len(args) != 0 {
			return Command{}, false, syntaxf(line, src, "%s takes no arguments", word)
		}
	}
	return cmd, true, nil
}

// Run applies cmds in order and stops at the first rejected command.
func Run(c *grid.Controller, cmds []Command) error {
	for _, cmd := range cmds {
		if err := apply(c, cmd); err != nil {
			return &Error{Line: cmd.Line, Cmd: cmd.Src, Err: err}
		}
	}
	return nil
}

func apply(c *grid.Controller, cmd Command) error {
	switch cmd.Op {
	case OpSelect:
		return c.SelectCell(cmd.Pos)
	case OpSet:
		return c.SetCursorValue(cmd.Text)
	case OpClear:
		return c.SetCursorValue("")
	case OpAddRow:
		c.GrowRow()
	case OpAddCol:
		c.GrowCol()
	case OpMove:
		c.MoveCursor(cmd.DCol, cmd.DRow)
	default:
		return fmt.Errorf("unknown op %d", cmd.Op)
	}
	return nil
}

// Exec parses and runs the script read from r.
func Exec(c *grid.Controller, r io.Reader) error {
	cmds, err := Parse(r)
	if err != nil {
		return err
	}
	return Run(c, cmds)
}
