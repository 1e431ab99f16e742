// Package jsonc removes comments from JSON-like text so that the result can be
// fed to a standard JSON parser such as encoding/json.
//
// The following types of comments are supported:
//   - C style block comments (/* ... */)
//   - C style line comments (// ...)
//   - Shell style line comments (# ...)
//
// Comments are dropped from the output. The newline ending a line comment is
// kept so that line numbers reported by the downstream parser stay meaningful;
// newlines inside block comments are dropped with the rest of the comment.
// Anything inside double-quoted strings, including backslash escapes, is left
// untouched. The filter does not validate JSON: unterminated strings and stray
// slashes are passed through for the parser to reject.
//
// Use NewReader to filter a stream or Strip for a complete document.
package jsonc

// filter drives Step over a sequence of bytes and keeps track of input
// positions for error reporting.
type filter struct {
	state  LexState
	pos    Position // position of the next input byte
	held   Position // position of the held '/'
	opened Position // start of the current block comment
}

func newFilter(name string) filter {
	return filter{pos: Position{Filename: name, Line: 1, Column: 1}}
}

// feed steps the machine over c and appends the emitted bytes (at most two) to
// out.
func (f *filter) feed(out []byte, c byte) []byte {
	next, a := Step(f.state, c)
	switch {
	case a&Hold != 0:
		f.held = f.pos
	case next == BlockComment && f.state == MaybeComment:
		f.opened = f.held
	}
	if a&Release != 0 {
		out = append(out, '/')
	}
	if a&Emit != 0 {
		out = append(out, c)
	}
	f.state = next

	f.pos.Offset++
	if c == '\n' {
		f.pos.Line++
		f.pos.Column = 1
	} else {
		f.pos.Column++
	}
	return out
}

// end runs the end-of-input check and appends a trailing held '/' to out.
func (f *filter) end(out []byte) ([]byte, error) {
	release, err := End(f.state)
	if err != nil {
		return out, &CommentError{Pos: f.opened}
	}
	if release {
		out = append(out, '/')
		f.state = Normal
	}
	return out, nil
}

// Strip returns data with all comments removed.
func Strip(data []byte) ([]byte, error) {
	f := newFilter("")
	out := make([]byte, 0, len(data))
	for _, c := range data {
		out = f.feed(out, c)
	}
	out, err := f.end(out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StripFunc removes comments from data like Strip, but instead of building the
// output it calls fn for every output byte with the offset in data of the
// input byte it came from. A released '/' carries the offset of the '/'
// itself. On an unterminated block comment it returns a *CommentError.
func StripFunc(data []byte, fn func(c byte, off int64)) error {
	f := newFilter("")
	var buf [2]byte
	for _, c := range data {
		// anything emitted out of MaybeComment starts with the released '/'
		released := f.state == MaybeComment
		held, off := f.held.Offset, f.pos.Offset
		for i, b := range f.feed(buf[:0], c) {
			if i == 0 && released {
				fn(b, held)
			} else {
				fn(b, off)
			}
		}
	}
	tail, err := f.end(buf[:0])
	if err != nil {
		return err
	}
	for _, b := range tail {
		fn(b, f.held.Offset)
	}
	return nil
}

// StripString is like Strip for strings.
func StripString(s string) (string, error) {
	out, err := Strip([]byte(s))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
