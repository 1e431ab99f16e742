package jsoncsec

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

// Alg names an AEAD construction.
type Alg string

const (
	AlgXChaCha20Poly1305 Alg = "XCHACHA20-POLY1305"
	AlgAES256GCM         Alg = "AES-256-GCM"
)

type aeadSuite struct {
	keyLen   int
	nonceLen int
	newAEAD  func(key []byte) (cipher.AEAD, error)
}

var suites = map[Alg]aeadSuite{
	AlgXChaCha20Poly1305: {
		keyLen:   chacha20poly1305.KeySize,
		nonceLen: chacha20poly1305.NonceSizeX,
		newAEAD:  chacha20poly1305.NewX,
	},
	AlgAES256GCM: {
		keyLen:   32,
		nonceLen: 12,
		newAEAD: func(key []byte) (cipher.AEAD, error) {
			block, err := aes.NewCipher(key)
			if err != nil {
				return nil, err
			}
			return cipher.NewGCM(block)
		},
	},
}

func suiteFor(alg Alg) (aeadSuite, error) {
	s, ok := suites[alg]
	if !ok {
		return aeadSuite{}, fmt.Errorf("jsoncsec: unsupported AEAD algorithm %q", alg)
	}
	return s, nil
}

// ParseAlg accepts the canonical algorithm names as well as the short forms
// "xchacha" and "aesgcm".
func ParseAlg(s string) (Alg, error) {
	switch strings.ToLower(s) {
	case "xchacha", "xchacha20", "xchacha20poly1305", "xchacha20-poly1305":
		return AlgXChaCha20Poly1305, nil
	case "aes", "aesgcm", "aes-256-gcm":
		return AlgAES256GCM, nil
	}
	return "", fmt.Errorf("jsoncsec: unknown algorithm %q", s)
}
