package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/gridsheet"
	"github.com/iw2rmb/gridsheet/gridview"
	"github.com/iw2rmb/gridsheet/internal/script"
	"github.com/iw2rmb/gridsheet/sheet"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runCLIStderr(t, stdin, args...)
	return out, err
}

func runCLIStderr(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestPrint_ExecLines(t *testing.T) {
	out, err := runCLI(t, "", "print", "--cols", "3", "--rows", "3",
		"-e", "set 4", "-e", "move 0 1", "-e", "set 5", "-e", "select C3", "-e", "set total")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	for _, want := range []string{"A", "B", "C", "total", "9"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrint_SummaryToStderr(t *testing.T) {
	out, errOut, err := runCLIStderr(t, "", "print", "--cols", "3", "--rows", "2",
		"-s", "-e", "set 1", "-e", "select B2", "-e", "set x")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if want := "3x2, 2 cells, cursor B2\n"; errOut != want {
		t.Fatalf("stderr: got %q, want %q", errOut, want)
	}
	if strings.Contains(out, "cells, cursor") {
		t.Fatalf("summary leaked to stdout:\n%s", out)
	}

	_, errOut, err = runCLIStderr(t, "", "print", "-e", "set 1")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if errOut != "" {
		t.Fatalf("stderr without --summary: got %q, want empty", errOut)
	}
}

func TestPrint_FileAndStdin(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.txt")
	if err := os.WriteFile(path, []byte("# demo\nset 40\naddrow\nselect A11\nset 2\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	out, err := runCLI(t, "", "print", "-f", path)
	if err != nil {
		t.Fatalf("print -f: %v", err)
	}
	if !strings.Contains(out, "42") || !strings.Contains(out, "11") {
		t.Fatalf("output missing sum or grown row:\n%s", out)
	}

	out, err = runCLI(t, "set 7\n", "print", "-f", "-", "--cols", "1", "--rows", "1")
	if err != nil {
		t.Fatalf("print -f -: %v", err)
	}
	if !strings.Contains(out, "7") {
		t.Fatalf("stdin script not applied:\n%s", out)
	}
}

func TestPrint_ScriptErrors(t *testing.T) {
	_, err := runCLI(t, "", "print", "--cols", "2", "--rows", "2", "-e", "select Z9")
	if !errors.Is(err, sheet.ErrInvalidPosition) {
		t.Fatalf("print: got %v, want ErrInvalidPosition", err)
	}

	_, err = runCLI(t, "", "print", "-e", "frobnicate")
	if !errors.Is(err, script.ErrSyntax) {
		t.Fatalf("print: got %v, want ErrSyntax", err)
	}
}

func TestPrint_InvalidFlags(t *testing.T) {
	if _, err := runCLI(t, "", "print", "--cols", "-1"); err == nil {
		t.Fatalf("negative --cols accepted")
	}
	if _, err := runCLI(t, "", "print", "--col-width", "0"); err == nil {
		t.Fatalf("zero --col-width accepted")
	}
}

func TestDebugLog_WritesRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if _, err := runCLI(t, "", "print", "--debug-log", path, "-e", "set 1"); err != nil {
		t.Fatalf("print: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `set A1: <absent> -> "1"`) {
		t.Fatalf("debug log missing mutation record:\n%s", data)
	}
}

func TestApp_QuitKeys(t *testing.T) {
	a := newApp(gridview.Config{Cols: 2, Rows: 2})

	if _, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Fatalf("q outside edit mode must quit")
	}

	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.(app).grid.Editing() {
		t.Fatalf("q while editing must stay in the grid")
	}
	if got := m.(app).grid.Controller().CursorValue(); got != "xq" {
		t.Fatalf("cell value: got %q, want %q", got, "xq")
	}
}

func TestVersionFlag_PrintsEmbeddedVersion(t *testing.T) {
	out, err := runCLI(t, "", "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !gridsheet.IsSemver(gridsheet.Version()) {
		t.Fatalf("embedded version is not semver: %q", gridsheet.Version())
	}
	if !strings.Contains(out, "version "+gridsheet.Version()) {
		t.Fatalf("--version output: got %q, want it to name %s", out, gridsheet.Version())
	}
}
