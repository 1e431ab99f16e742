package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/width"

	"github.com/chandan-cmd-dev/jsonc-go/jsonc"
)

type CheckCmd struct {
	Files []string `arg:"positional" help:"Files to check, stdin if none"`
}

// errInvalid is returned when at least one input failed the check.
var errInvalid = errors.New("invalid input")

func (r *Runner) runCheck(cmd *CheckCmd) error {
	failed := 0
	err := r.eachInput(cmd.Files, func(in *input) error {
		data, err := io.ReadAll(in.rc)
		if err != nil {
			return errors.Wrapf(err, "read %s", in.name)
		}
		if p := checkDocument(in.name, data); p != nil {
			reportProblem(r.Stdout, data, p)
			failed++
			return nil
		}
		r.Logger.Debug("ok", "input", in.name)
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return errors.Wrapf(errInvalid, "%d of %d", failed, max(len(cmd.Files), 1))
	}
	return nil
}

type problem struct {
	pos jsonc.Position
	msg string
}

// checkDocument strips data and validates the result. Errors from the JSON
// parser are mapped back to positions in the commented input.
func checkDocument(name string, data []byte) *problem {
	clean, offs, err := stripMapped(data)
	if err != nil {
		var ce *jsonc.CommentError
		if !errors.As(err, &ce) {
			return &problem{pos: position(name, data, 0), msg: err.Error()}
		}
		pos := ce.Pos
		pos.Filename = name
		return &problem{pos: pos, msg: jsonc.ErrUnterminatedBlockComment.Error()}
	}
	var v any
	err = json.Unmarshal(clean, &v)
	if err == nil {
		return nil
	}
	off := len(data)
	var se *json.SyntaxError
	// Offset counts the bytes read up to and including the offending one.
	if errors.As(err, &se) && se.Offset > 0 && int(se.Offset) <= len(offs) &&
		!truncated(clean, se) {
		off = offs[se.Offset-1]
	}
	return &problem{pos: position(name, data, off), msg: err.Error()}
}

// truncated reports whether se was raised because clean ended early, in
// which case there is no offending byte. A syntax error on the last byte has
// the same offset, so ask a Decoder, which reports truncation as an error
// value of its own.
func truncated(clean []byte, se *json.SyntaxError) bool {
	if int(se.Offset) != len(clean) {
		return false
	}
	err := json.NewDecoder(bytes.NewReader(clean)).Decode(new(any))
	return err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF)
}

// stripMapped strips data and records, for every output byte, its offset in
// data.
func stripMapped(data []byte) (out []byte, offs []int, err error) {
	out = make([]byte, 0, len(data))
	offs = make([]int, 0, len(data))
	err = jsonc.StripFunc(data, func(c byte, off int64) {
		out = append(out, c)
		offs = append(offs, int(off))
	})
	if err != nil {
		return nil, nil, err
	}
	return out, offs, nil
}

func position(name string, data []byte, off int) jsonc.Position {
	if off > len(data) {
		off = len(data)
	}
	line := 1 + bytes.Count(data[:off], []byte{'\n'})
	start := bytes.LastIndexByte(data[:off], '\n') + 1
	return jsonc.Position{Filename: name, Offset: int64(off), Line: line, Column: off - start + 1}
}

// reportProblem writes p in the form:
//
//	file:line:col: error description
//	|source line
//	|     ^
func reportProblem(w io.Writer, data []byte, p *problem) {
	fmt.Fprintf(w, "%s: %s\n", p.pos, p.msg)
	start := int(p.pos.Offset) - (p.pos.Column - 1)
	end := bytes.IndexByte(data[start:], '\n')
	if end < 0 {
		end = len(data) - start
	}
	l := bytes.TrimSuffix(data[start:start+end], []byte{'\r'})
	b := p.pos.Column - 1
	if b > len(l) {
		b = len(l)
	}
	fmt.Fprintf(w, "|%s\n", l)
	fmt.Fprintf(w, "|%s^\n", caretPad(l[:b]))
}

// caretPad returns the blanks that cover l in text cells, assuming a UTF-8
// locale and a monospaced font. Tabs are kept as is.
func caretPad(l []byte) string {
	var sb strings.Builder
	for i := 0; i < len(l); {
		r, s := utf8.DecodeRune(l[i:])
		i += s
		switch {
		case r == '\t':
			sb.WriteByte('\t')
		case !unicode.IsGraphic(r):
		default:
			switch width.LookupRune(r).Kind() {
			case width.EastAsianFullwidth, width.EastAsianWide:
				sb.WriteString("  ")
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
