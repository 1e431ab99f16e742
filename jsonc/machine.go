package jsonc

// Step classifies c in state s and returns the next state together with what
// the driver must do with c. Step is pure; the only state carried between bytes
// is the returned LexState.
func Step(s LexState, c byte) (LexState, Action) {
	switch s {
	case Normal:
		return normal(c)
	case InString:
		switch c {
		case '"':
			return Normal, Emit
		case '\\':
			return StringEscape, Emit
		}
		return InString, Emit
	case StringEscape:
		// whatever follows the backslash is taken verbatim
		return InString, Emit
	case MaybeComment:
		switch c {
		case '/':
			return LineComment, Discard
		case '*':
			return BlockComment, Discard
		}
		// the held '/' was content after all: catch it up, then treat c as
		// plain text would.
		next, a := normal(c)
		return next, a | Release
	case LineComment:
		if c == '\n' {
			return Normal, Emit
		}
		return LineComment, Discard
	case BlockComment:
		if c == '*' {
			return BlockCommentMaybeEnd, Discard
		}
		return BlockComment, Discard
	case BlockCommentMaybeEnd:
		switch c {
		case '/':
			return Normal, Discard
		case '*':
			return BlockCommentMaybeEnd, Discard
		}
		return BlockComment, Discard
	}
	panic("jsonc: invalid lexical state " + s.String())
}

func normal(c byte) (LexState, Action) {
	switch c {
	case '"':
		return InString, Emit
	case '/':
		return MaybeComment, Hold
	case '#':
		return LineComment, Discard
	}
	return Normal, Emit
}

// End runs the end-of-input check on the final state. If release is true the
// held '/' is real content and must be written out.
func End(s LexState) (release bool, err error) {
	switch s {
	case MaybeComment:
		return true, nil
	case BlockComment, BlockCommentMaybeEnd:
		return false, ErrUnterminatedBlockComment
	}
	return false, nil
}
