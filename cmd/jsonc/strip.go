package main

import (
	"io"

	"github.com/pkg/errors"

	"github.com/chandan-cmd-dev/jsonc-go/jsonc"
)

type StripCmd struct {
	Files []string `arg:"positional" help:"Files to read, stdin if none"`
}

func (r *Runner) runStrip(cmd *StripCmd) error {
	return r.eachInput(cmd.Files, func(in *input) error {
		n, err := io.Copy(r.Stdout, jsonc.NewReader(in.rc, jsonc.Filename(in.name)))
		if err != nil {
			return errors.Wrapf(err, "strip %s", in.name)
		}
		r.Logger.Debug("stripped", "input", in.name, "bytes", n)
		return nil
	})
}
