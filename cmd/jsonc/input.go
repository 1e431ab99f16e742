package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

const stdinName = "<stdin>"

// input is one source named on the command line, "-" or nothing meaning stdin.
type input struct {
	name string
	rc   io.ReadCloser
}

func (r *Runner) openInput(path string) (*input, error) {
	if path == "" || path == "-" {
		return &input{name: stdinName, rc: io.NopCloser(r.Stdin)}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return &input{name: path, rc: f}, nil
}

// eachInput calls fn for every path, or once for stdin when paths is empty.
func (r *Runner) eachInput(paths []string, fn func(in *input) error) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, p := range paths {
		in, err := r.openInput(p)
		if err != nil {
			return err
		}
		err = fn(in)
		in.rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) readInput(path string) ([]byte, string, error) {
	in, err := r.openInput(path)
	if err != nil {
		return nil, "", err
	}
	defer in.rc.Close()
	b, err := io.ReadAll(in.rc)
	if err != nil {
		return nil, "", errors.Wrapf(err, "read %s", in.name)
	}
	return b, in.name, nil
}
