package jsonc

import (
	"errors"
	"fmt"
)

// ErrUnterminatedBlockComment is reported when the input ends inside a
// /* ... */ comment.
var ErrUnterminatedBlockComment = errors.New("jsonc: unterminated block comment")

// Position describes a location in the unfiltered input.
type Position struct {
	Filename string
	Offset   int64 // byte offset, starts at 0
	Line     int   // 1-based line number
	Column   int   // 1-based column number (byte index)
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// CommentError reports a block comment left open at end of input. Pos is the
// position of the opening "/*".
type CommentError struct {
	Pos Position
}

func (e *CommentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, ErrUnterminatedBlockComment.Error())
}

func (e *CommentError) Is(target error) bool {
	return target == ErrUnterminatedBlockComment
}

// SourceError wraps a failure of the underlying reader. The filter does not
// interpret it.
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return "jsonc: read source: " + e.Err.Error()
}

func (e *SourceError) Unwrap() error { return e.Err }
