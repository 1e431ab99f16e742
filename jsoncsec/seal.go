// Package jsoncsec seals commented JSON documents, typically configuration
// files carrying secrets, under an AEAD. The document is sealed as written,
// comments included, so that opening it gives back what its author wrote.
package jsoncsec

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/chandan-cmd-dev/jsonc-go/jsonc"
)

const (
	magic = "JSCS"
	ver01 = 0x01
)

// Header is authenticated along with the document. Extra carries free form
// context such as the tool or environment a document was sealed for.
type Header struct {
	Alg   Alg               `json:"alg"`
	KeyID string            `json:"kid"`
	Extra map[string]string `json:"extra,omitempty"`
}

// Seal encrypts doc with the key hdr.KeyID resolves to. doc must be valid
// JSON once comments are stripped.
func Seal(doc []byte, hdr Header, kr Keyring) ([]byte, error) {
	clean, err := jsonc.Strip(doc)
	if err != nil {
		return nil, errors.Wrap(err, "jsoncsec: seal")
	}
	if !json.Valid(clean) {
		return nil, errors.New("jsoncsec: seal: document is not valid JSON")
	}
	return seal(doc, hdr, kr, rand.Reader)
}

func seal(doc []byte, hdr Header, kr Keyring, rnd io.Reader) ([]byte, error) {
	suite, err := suiteFor(hdr.Alg)
	if err != nil {
		return nil, err
	}
	key, err := kr.Get(hdr.KeyID)
	if err != nil {
		return nil, err
	}
	if len(key) != suite.keyLen {
		return nil, fmt.Errorf("jsoncsec: key length %d mismatch for %s", len(key), hdr.Alg)
	}
	a, err := suite.newAEAD(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, suite.nonceLen)
	if _, err := io.ReadFull(rnd, nonce); err != nil {
		return nil, errors.Wrap(err, "jsoncsec: nonce")
	}
	aad, err := json.Marshal(hdr)
	if err != nil {
		return nil, err
	}
	ct := a.Seal(nil, nonce, doc, aad)

	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.WriteByte(ver01)
	for _, f := range [][]byte{[]byte(hdr.Alg), []byte(hdr.KeyID), nonce, aad, ct} {
		if err := WriteFrame(&buf, f); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Open authenticates and decrypts a blob produced by Seal and returns the
// original commented document.
func Open(blob []byte, kr Keyring) ([]byte, Header, error) {
	rd := bytes.NewReader(blob)
	m := make([]byte, len(magic))
	if _, err := io.ReadFull(rd, m); err != nil || string(m) != magic {
		return nil, Header{}, errors.New("jsoncsec: bad magic")
	}
	ver, err := rd.ReadByte()
	if err != nil {
		return nil, Header{}, errors.Wrap(err, "jsoncsec: version")
	}
	if ver != ver01 {
		return nil, Header{}, fmt.Errorf("jsoncsec: unsupported version %d", ver)
	}

	var frames [5][]byte
	for i := range frames {
		if frames[i], err = ReadFrame(rd); err != nil {
			return nil, Header{}, errors.Wrap(err, "jsoncsec: truncated blob")
		}
	}
	alg, keyID, nonce, aad, ct := frames[0], frames[1], frames[2], frames[3], frames[4]

	var hdr Header
	if err := json.Unmarshal(aad, &hdr); err != nil {
		return nil, Header{}, errors.Wrap(err, "jsoncsec: header")
	}
	if hdr.KeyID != string(keyID) || string(hdr.Alg) != string(alg) {
		return nil, Header{}, errors.New("jsoncsec: AAD/header mismatch")
	}

	suite, err := suiteFor(hdr.Alg)
	if err != nil {
		return nil, Header{}, err
	}
	key, err := kr.Get(hdr.KeyID)
	if err != nil {
		return nil, Header{}, err
	}
	if len(key) != suite.keyLen {
		return nil, Header{}, errors.New("jsoncsec: key length mismatch")
	}
	if len(nonce) != suite.nonceLen {
		return nil, Header{}, errors.New("jsoncsec: bad nonce length")
	}
	a, err := suite.newAEAD(key)
	if err != nil {
		return nil, Header{}, err
	}
	doc, err := a.Open(nil, nonce, ct, aad)
	if err != nil {
		return nil, Header{}, errors.Wrap(err, "jsoncsec: decryption failed")
	}
	return doc, hdr, nil
}

// OpenInto opens blob and unmarshals the document into v.
func OpenInto(blob []byte, kr Keyring, v any) (Header, error) {
	doc, hdr, err := Open(blob, kr)
	if err != nil {
		return Header{}, err
	}
	if err := jsonc.Unmarshal(doc, v); err != nil {
		return Header{}, errors.Wrap(err, "jsoncsec: open")
	}
	return hdr, nil
}
