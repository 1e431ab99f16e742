package main

import (
	"github.com/pkg/errors"

	"github.com/chandan-cmd-dev/jsonc-go/jsonc"
)

type FmtCmd struct {
	Indent bool   `arg:"-i,--indent" help:"Indent the output"`
	File   string `arg:"positional" help:"File to read, stdin if none"`
}

func (r *Runner) runFmt(cmd *FmtCmd) error {
	in, err := r.openInput(cmd.File)
	if err != nil {
		return err
	}
	defer in.rc.Close()

	v, err := jsonc.DecodeExact(in.rc, jsonc.Filename(in.name))
	if err != nil {
		return errors.Wrapf(err, "fmt %s", in.name)
	}
	out, err := jsonc.Marshal(v, cmd.Indent)
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = r.Stdout.Write(out)
	return err
}
