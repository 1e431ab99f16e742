package jsonc

import "strconv"

// LexState is the lexical context the stripper is in between two bytes.
type LexState uint8

const (
	Normal               LexState = iota // plain JSON text
	InString                             // inside "..."
	StringEscape                         // right after a backslash inside a string
	MaybeComment                         // a '/' is held, waiting for the next byte
	LineComment                          // inside // ... or # ...
	BlockComment                         // inside /* ... */
	BlockCommentMaybeEnd                 // inside a block comment, right after '*'
)

var stateNames = [...]string{
	Normal:               "Normal",
	InString:             "InString",
	StringEscape:         "StringEscape",
	MaybeComment:         "MaybeComment",
	LineComment:          "LineComment",
	BlockComment:         "BlockComment",
	BlockCommentMaybeEnd: "BlockCommentMaybeEnd",
}

func (s LexState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "LexState(" + strconv.Itoa(int(s)) + ")"
}

// InComment reports whether s is one of the comment states.
func (s LexState) InComment() bool {
	return s == LineComment || s == BlockComment || s == BlockCommentMaybeEnd
}

// Action tells the driver what to do with the byte just fed to Step.
// The zero value discards it.
type Action uint8

const (
	// Emit passes the current byte through.
	Emit Action = 1 << iota
	// Hold buffers the current byte until the next one classifies it. The held
	// byte is always '/'.
	Hold
	// Release writes out the held '/' before anything else.
	Release
)

const Discard Action = 0
