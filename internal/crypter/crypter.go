// Package crypter шифрует приватные заметки ссылок перед записью в хранилище.
package crypter

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

var (
	ErrEmptyKey  = errors.New("[crypter]: empty key")
	ErrCorrupted = errors.New("[crypter]: corrupted ciphertext")
	ErrWrongKey  = errors.New("[crypter]: message authentication failed")
)

// Crypter шифрует и расшифровывает строки с помощью NaCl secretbox.
// Ключ получается как SHA-256 от секрета.
type Crypter struct {
	key [keySize]byte
}

func New(secret string) (*Crypter, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}
	return &Crypter{key: sha256.Sum256([]byte(secret))}, nil
}

// Seal шифрует plain. Пустая строка остается пустой, чтобы не хранить
// шифротекст для записей без заметок.
// Результат: base64(nonce || secretbox).
func (c *Crypter) Seal(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(plain), &nonce, &c.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open расшифровывает значение, полученное из Seal.
func (c *Crypter) Open(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCorrupted, err.Error())
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrCorrupted
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return "", ErrWrongKey
	}
	return string(plain), nil
}
