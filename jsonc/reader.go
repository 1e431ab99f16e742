package jsonc

import "io"

const maxEmptyReads = 100

// A Reader removes comments from the stream read from an underlying
// io.Reader.
//
// Read reads from the source into the caller's buffer and filters it in place,
// so a call never consumes more than len(p) source bytes at a time. It keeps
// reading until at least one byte has been produced or the source is
// exhausted, so a long comment never shows up as a zero-length read. Read
// returns io.EOF once the source is exhausted and the end of input is clean.
// If the input ends inside a block comment, Read returns a *CommentError
// instead. Failures of the source are returned wrapped in a *SourceError.
// Errors are sticky.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src   io.Reader
	f     filter
	ioErr error // error returned by the last read from src
	err   error

	one      [1]byte // source byte when p has no room left for input
	out      [2]byte
	carry    byte // emitted byte that did not fit in the caller's buffer
	hasCarry bool
}

// An Option configures a Reader.
type Option func(*Reader)

// Filename sets the file name reported in error positions.
func Filename(name string) Option {
	return func(r *Reader) {
		r.f.pos.Filename = name
	}
}

// NewReader returns a Reader that filters comments out of src.
func NewReader(src io.Reader, opts ...Option) *Reader {
	r := &Reader{
		src: src,
		f:   newFilter(""),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.hasCarry {
		p[0] = r.carry
		r.hasCarry = false
		return 1, nil
	}
	for n == 0 {
		switch {
		case r.err != nil:
			return 0, r.err
		case r.ioErr == io.EOF:
			r.err = io.EOF
			tail, err := r.f.end(r.out[:0])
			if err != nil {
				r.err = err
				return 0, err
			}
			n = r.put(p, tail)
			continue
		case r.ioErr != nil:
			r.err = &SourceError{Err: r.ioErr}
			return 0, r.err
		}
		n = r.fill(p)
	}
	return n, nil
}

// fill reads once from src and filters the bytes in place. Output only runs
// ahead of input when a '/' held from an earlier call is released, so p[0] is
// reserved for it while the filter is in MaybeComment.
func (r *Reader) fill(p []byte) int {
	off := 0
	if r.f.state == MaybeComment {
		off = 1
	}
	if off == len(p) {
		if r.readSource(r.one[:]) == 0 {
			return 0
		}
		return r.put(p, r.f.feed(r.out[:0], r.one[0]))
	}
	m := r.readSource(p[off:])
	w := 0
	for i := off; i < off+m; i++ {
		for _, c := range r.f.feed(r.out[:0], p[i]) {
			p[w] = c
			w++
		}
	}
	return w
}

func (r *Reader) readSource(dst []byte) int {
	for i := 0; i < maxEmptyReads; i++ {
		m, err := r.src.Read(dst)
		if m > 0 || err != nil {
			r.ioErr = err
			return m
		}
	}
	r.ioErr = io.ErrNoProgress
	return 0
}

// put copies b to the start of p. At most one byte spills into the carry.
func (r *Reader) put(p []byte, b []byte) int {
	n := 0
	for _, c := range b {
		if n < len(p) {
			p[n] = c
			n++
		} else {
			r.carry = c
			r.hasCarry = true
		}
	}
	return n
}

// State returns the current lexical state.
func (r *Reader) State() LexState {
	return r.f.state
}

// Pos returns the position of the next input byte to be filtered.
func (r *Reader) Pos() Position {
	return r.f.pos
}
