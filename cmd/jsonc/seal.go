package main

import (
	"bytes"
	"os"

	"github.com/pkg/errors"

	"github.com/chandan-cmd-dev/jsonc-go/jsoncsec"
)

type SealCmd struct {
	Keyfile string `arg:"-k,--keyfile,required" help:"Path to a raw 32-byte key file"`
	Alg     string `arg:"--alg" default:"xchacha" help:"xchacha | aesgcm"`
	KeyID   string `arg:"--kid" default:"k1" help:"Key id to embed in the header"`
	File    string `arg:"positional" help:"Document to seal, stdin if none"`
}

type OpenCmd struct {
	Keyfile string `arg:"-k,--keyfile,required" help:"Path to a raw 32-byte key file"`
	File    string `arg:"positional" help:"Sealed blob, stdin if none"`
}

func (r *Runner) runSeal(cmd *SealCmd) error {
	alg, err := jsoncsec.ParseAlg(cmd.Alg)
	if err != nil {
		return err
	}
	key, err := readKey(cmd.Keyfile)
	if err != nil {
		return err
	}
	doc, name, err := r.readInput(cmd.File)
	if err != nil {
		return err
	}
	hdr := jsoncsec.Header{
		Alg:   alg,
		KeyID: cmd.KeyID,
		Extra: map[string]string{"tool": "jsonc", "name": name},
	}
	blob, err := jsoncsec.Seal(doc, hdr, jsoncsec.StaticKeyring{cmd.KeyID: key})
	if err != nil {
		return errors.Wrapf(err, "seal %s", name)
	}
	r.Logger.Debug("sealed", "input", name, "alg", alg, "kid", cmd.KeyID, "bytes", len(blob))
	_, err = r.Stdout.Write(blob)
	return err
}

func (r *Runner) runOpen(cmd *OpenCmd) error {
	key, err := readKey(cmd.Keyfile)
	if err != nil {
		return err
	}
	blob, name, err := r.readInput(cmd.File)
	if err != nil {
		return err
	}
	// the key id is only known after parsing the blob; accept any id for the
	// single key given on the command line.
	doc, hdr, err := jsoncsec.Open(blob, anyKeyring(key))
	if err != nil {
		return errors.Wrapf(err, "open %s", name)
	}
	r.Logger.Debug("opened", "input", name, "alg", hdr.Alg, "kid", hdr.KeyID)
	_, err = r.Stdout.Write(doc)
	return err
}

type anyKeyring []byte

func (k anyKeyring) Get(string) ([]byte, error) { return k, nil }

// readKey reads a raw key file. A trailing newline past the key length is
// dropped.
func readKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read key")
	}
	if len(key) > keyLen {
		key = bytes.TrimRight(key, "\r\n")
	}
	return key, nil
}

const keyLen = 32
