// Package input turns raw byte streams into value tokens for the distinct
// command: one token per line, or one per element of a JSON array.
package input

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// Format selects how a stream is split into tokens.
type Format string

const (
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatLines, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown input format %q (expected \"lines\" or \"json\")", s)
}

// MaxLineLength bounds a single line in lines mode.
const MaxLineLength = 1 << 20

// StdinName is the source name that selects standard input.
const StdinName = "-"

type Options struct {
	Format Format
	// Trim strips surrounding whitespace from each line.
	Trim bool
	// SkipBlank drops lines that are empty after trimming.
	SkipBlank bool
	// NFC applies Unicode normalization form C to every token.
	NFC bool
	// XZ decompresses every stream before decoding.
	XZ bool
}

// Token is a single raw value and where it came from.
type Token struct {
	Source string
	// Line is the 1-based line number in lines mode, or the 1-based array
	// position in JSON mode.
	Line int
	Text string
}

// Source is a named stream that is opened lazily by Read.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// Files returns one Source per name. "-" selects stdin; stdin is read once,
// at the position of its first "-", and later repeats are dropped.
func Files(names []string, stdin io.Reader) []Source {
	sources := make([]Source, 0, len(names))
	seenStdin := false
	for _, name := range names {
		if name == StdinName {
			if !seenStdin {
				seenStdin = true
				sources = append(sources, Reader(StdinName, stdin))
			}
			continue
		}
		sources = append(sources, Source{
			Name: name,
			Open: func() (io.ReadCloser, error) { return os.Open(name) },
		})
	}
	return sources
}

// Reader wraps an already open stream as a Source. The stream is not closed.
func Reader(name string, r io.Reader) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

// Read decodes every source concurrently and returns their tokens
// concatenated in source order. With no sources the result is nil; with
// sources that hold no values it is empty but non-nil.
func Read(ctx context.Context, sources []Source, opts Options) ([]Token, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	results := make([][]Token, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rc, err := src.Open()
			if err != nil {
				return err
			}
			defer rc.Close()

			tokens, err := Decode(rc, src.Name, opts)
			if err != nil {
				return err
			}
			log.WithField("source", src.Name).WithField("tokens", len(tokens)).Debug("Read input source")
			results[i] = tokens
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, r := range results {
		n += len(r)
	}
	out := make([]Token, 0, n)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// Decode splits a single stream into tokens.
func Decode(r io.Reader, name string, opts Options) ([]Token, error) {
	if opts.XZ {
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("xz %s: %w", name, err)
		}
		r = xr
	}

	var (
		tokens []Token
		err    error
	)
	switch opts.Format {
	case FormatJSON:
		tokens, err = decodeJSON(r, name)
	case FormatLines, "":
		tokens, err = decodeLines(r, name, opts)
	default:
		return nil, fmt.Errorf("unknown input format %q", opts.Format)
	}
	if err != nil {
		return nil, err
	}

	if opts.NFC {
		for i := range tokens {
			tokens[i].Text = norm.NFC.String(tokens[i].Text)
		}
	}
	return tokens, nil
}

func decodeLines(r io.Reader, name string, opts Options) ([]Token, error) {
	tokens := []Token{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if opts.Trim {
			text = strings.TrimSpace(text)
		}
		if opts.SkipBlank && text == "" {
			continue
		}
		tokens = append(tokens, Token{Source: name, Line: line, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return tokens, nil
}

func decodeJSON(r io.Reader, name string) ([]Token, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var elems []any
	if err := dec.Decode(&elems); err != nil {
		if errors.Is(err, io.EOF) {
			return []Token{}, nil
		}
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return nil, fmt.Errorf("decode %s: unexpected data after the JSON array", name)
	}

	tokens := make([]Token, 0, len(elems))
	for i, e := range elems {
		var text string
		switch v := e.(type) {
		case string:
			text = v
		case json.Number:
			text = v.String()
		default:
			return nil, fmt.Errorf("decode %s: element %d is %T, want string or number", name, i+1, e)
		}
		tokens = append(tokens, Token{Source: name, Line: i + 1, Text: text})
	}
	return tokens, nil
}
