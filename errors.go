// errors.go - Sentinel errors.

package saber

import "errors"

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key is
	// an invalid size.
	ErrInvalidKeySize = errors.New("saber: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a byte serialized
	// ciphertext is an invalid size.
	ErrInvalidCipherTextSize = errors.New("saber: invalid ciphertext size")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// private key is malformed.
	ErrInvalidPrivateKey = errors.New("saber: invalid private key")
)
