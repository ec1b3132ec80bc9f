package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mibar/distinct/internal/values"
	"github.com/mibar/distinct/pkg/distinct"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// runWithHome executes the command with HOME pointed at home so that no user
// configuration leaks into the test.
func runWithHome(t *testing.T, home, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("HOME", home)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	return runWithHome(t, t.TempDir(), stdin, args...)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootNormalize(t *testing.T) {
	t.Run("it prints distinct integers in numeric order", func(t *testing.T) {
		res := runCLI(t, "3\n1\n2\n3\n1\n", "--type", "int")
		if res.err != nil {
			t.Fatal(res.err)
		}
		if res.stdout != "1\n2\n3\n" {
			t.Errorf("got %q", res.stdout)
		}
	})

	t.Run("it sorts strings lexicographically by default", func(t *testing.T) {
		res := runCLI(t, "b\na\nb\n10\n9\n")
		if res.err != nil {
			t.Fatal(res.err)
		}
		if res.stdout != "10\n9\na\nb\n" {
			t.Errorf("got %q", res.stdout)
		}
	})

	t.Run("it prints nothing for empty input", func(t *testing.T) {
		res := runCLI(t, "")
		if res.err != nil {
			t.Fatal(res.err)
		}
		if res.stdout != "" {
			t.Errorf("got %q, want empty output", res.stdout)
		}
	})

	t.Run("it keeps blank lines and whitespace when asked to", func(t *testing.T) {
		res := runCLI(t, " a\n\na\n", "--trim=false", "--skip-blank=false", "-f", "json")
		if res.err != nil {
			t.Fatal(res.err)
		}
		var doc struct{ Values []string }
		if err := json.Unmarshal([]byte(res.stdout), &doc); err != nil {
			t.Fatal(err)
		}
		if strings.Join(doc.Values, "|") != "| a|a" {
			t.Errorf("got %q", doc.Values)
		}
	})

	t.Run("it prints the count only", func(t *testing.T) {
		res := runCLI(t, "x\ny\nx\n", "--count")
		if res.err != nil {
			t.Fatal(res.err)
		}
		if res.stdout != "2\n" {
			t.Errorf("got %q", res.stdout)
		}
	})

	t.Run("it reads files in argument order and stdin for -", func(t *testing.T) {
		dir := t.TempDir()
		a := writeFile(t, dir, "a.txt", "5\n1\n")
		b := writeFile(t, dir, "b.txt", "5\n3\n")
		res := runCLI(t, "2\n", "-t", "int", a, "-", b)
		if res.err != nil {
			t.Fatal(res.err)
		}
		if res.stdout != "1\n2\n3\n5\n" {
			t.Errorf("got %q", res.stdout)
		}
	})

	t.Run("it reads stdin once when - is repeated", func(t *testing.T) {
		res := runCLI(t, "b\na\n", "-", "-")
		if res.err != nil {
			t.Fatal(res.err)
		}
		if res.stdout != "a\nb\n" {
			t.Errorf("got %q", res.stdout)
		}
	})

	t.Run("it reads a JSON array", func(t *testing.T) {
		res := runCLI(t, `[2.5, 1, 2.5, "0.5"]`, "-i", "json", "-t", "float")
		if res.err != nil {
			t.Fatal(res.err)
		}
		if res.stdout != "0.5\n1\n2.5\n" {
			t.Errorf("got %q", res.stdout)
		}
	})

	t.Run("it folds canonically equivalent strings with --nfc", func(t *testing.T) {
		res := runCLI(t, "e\u0301\n\u00e9\n", "--nfc", "--count")
		if res.err != nil {
			t.Fatal(res.err)
		}
		if res.stdout != "1\n" {
			t.Errorf("got %q", res.stdout)
		}
	})
}

func TestRootErrors(t *testing.T) {
	t.Run("it fails on empty input with --require", func(t *testing.T) {
		res := runCLI(t, "\n\n", "--require")
		if !errors.Is(res.err, distinct.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", res.err)
		}
		if res.stdout != "" {
			t.Errorf("expected no output, got %q", res.stdout)
		}
	})

	t.Run("it reports every unparsable value", func(t *testing.T) {
		res := runCLI(t, "1\nx\n2\ny\n", "-t", "int")
		var pe *values.ParseError
		if !errors.As(res.err, &pe) {
			t.Fatalf("expected ParseError, got %v", res.err)
		}
		msg := res.err.Error()
		if !strings.Contains(msg, `"x"`) || !strings.Contains(msg, `"y"`) {
			t.Errorf("expected both bad values in %q", msg)
		}
	})

	t.Run("it rejects NaN for floats", func(t *testing.T) {
		res := runCLI(t, "1\nNaN\n", "-t", "float")
		if res.err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("it rejects infinite floats in every output format", func(t *testing.T) {
		for _, format := range []string{"text", "json", "yaml", "toon"} {
			res := runCLI(t, "1\ninf\n-Inf\n", "-t", "float", "-f", format)
			var pe *values.ParseError
			if !errors.As(res.err, &pe) {
				t.Errorf("%s: expected ParseError, got %v", format, res.err)
			}
			if res.stdout != "" {
				t.Errorf("%s: expected no output, got %q", format, res.stdout)
			}
		}
	})

	t.Run("it rejects trailing data after a JSON array", func(t *testing.T) {
		if res := runCLI(t, "[1][2]", "-i", "json"); res.err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("it rejects unknown option values", func(t *testing.T) {
		for _, args := range [][]string{
			{"--type", "bool"},
			{"--input", "csv"},
			{"--format", "xml"},
		} {
			if res := runCLI(t, "a\n", args...); res.err == nil {
				t.Errorf("%v: expected error", args)
			}
		}
	})

	t.Run("it fails on a missing file", func(t *testing.T) {
		res := runCLI(t, "", filepath.Join(t.TempDir(), "missing.txt"))
		if !errors.Is(res.err, os.ErrNotExist) {
			t.Fatalf("expected not-exist error, got %v", res.err)
		}
	})
}

func TestRootLogging(t *testing.T) {
	t.Run("it logs debug output to stderr when verbose", func(t *testing.T) {
		res := runCLI(t, "a\n", "--verbose")
		if res.err != nil {
			t.Fatal(res.err)
		}
		if !strings.Contains(res.stderr, "Normalized input") {
			t.Errorf("expected debug log, got %q", res.stderr)
		}
	})

	t.Run("it stays silent by default", func(t *testing.T) {
		res := runCLI(t, "a\n")
		if res.err != nil {
			t.Fatal(res.err)
		}
		if res.stderr != "" {
			t.Errorf("expected no log output, got %q", res.stderr)
		}
	})
}
