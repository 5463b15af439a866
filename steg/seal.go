package steg

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

// Sealed frame layout: scrypt salt, secretbox nonce, then the box itself
// (ciphertext plus authentication tag).
const (
	saltLen  = 16
	nonceLen = 24
)

// SealOverhead is the number of frame bytes added by sealing a message
// with a passphrase.
const SealOverhead = saltLen + nonceLen + secretbox.Overhead

// scrypt cost parameters, interactive-use strength.
const (
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

func deriveKey(passphrase string, salt []byte) (*[32]byte, error) {
	k, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, err
	}
	key := new([32]byte)
	copy(key[:], k)
	return key, nil
}

func seal(msg []byte, passphrase string) ([]byte, error) {
	out := make([]byte, saltLen+nonceLen, SealOverhead+len(msg))
	if _, err := io.ReadFull(rand.Reader, out); err != nil {
		return nil, err
	}
	key, err := deriveKey(passphrase, out[:saltLen])
	if err != nil {
		return nil, err
	}
	var nonce [nonceLen]byte
	copy(nonce[:], out[saltLen:])
	return secretbox.Seal(out, msg, &nonce, key), nil
}

func open(sealed []byte, passphrase string) ([]byte, error) {
	if len(sealed) < SealOverhead {
		return nil, errors.Wrap(ErrBadPassphrase, "sealed frame truncated")
	}
	key, err := deriveKey(passphrase, sealed[:saltLen])
	if err != nil {
		return nil, err
	}
	var nonce [nonceLen]byte
	copy(nonce[:], sealed[saltLen:])
	msg, ok := secretbox.Open(nil, sealed[saltLen+nonceLen:], &nonce, key)
	if !ok {
		return nil, ErrBadPassphrase
	}
	return msg, nil
}
