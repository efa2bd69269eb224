/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package signing loads the RSA key used to sign API requests.
package signing

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/pkcs12"
)

var (
	// ErrKeystoreRead is raised when the keystore file cannot be read.
	ErrKeystoreRead = errors.New("failed to read keystore")

	// ErrKeystoreDecode is raised when the keystore is corrupt or the password is wrong.
	ErrKeystoreDecode = errors.New("failed to decode keystore")

	// ErrAliasNotFound is raised when no key in the keystore carries the alias.
	ErrAliasNotFound = errors.New("signing key alias not found")

	// ErrUnsupportedKey is raised when the selected key is not an RSA key.
	ErrUnsupportedKey = errors.New("unsupported signing key type")
)

const (
	privateKeyType = "PRIVATE KEY"
	friendlyName   = "friendlyName"
)

// LoadSigningKey reads a PKCS#12 keystore and returns the RSA private key
// stored under alias.
func LoadSigningKey(path, alias, password string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeystoreRead, err)
	}

	return DecodeSigningKey(data, alias, password)
}

// DecodeSigningKey is LoadSigningKey for a keystore already in memory.
func DecodeSigningKey(data []byte, alias, password string) (*rsa.PrivateKey, error) {
	blocks, err := pkcs12.ToPEM(data, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeystoreDecode, err)
	}

	block, err := selectKey(blocks, alias)
	if err != nil {
		return nil, err
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
	}

	return key, nil
}

// selectKey picks the private key whose friendly name matches the alias.
// Keystores exported without names carry a single key, which is used as is.
func selectKey(blocks []*pem.Block, alias string) (*pem.Block, error) {
	var keys []*pem.Block

	for _, block := range blocks {
		if block.Type == privateKeyType {
			keys = append(keys, block)
		}
	}

	for _, key := range keys {
		if strings.EqualFold(key.Headers[friendlyName], alias) {
			return key, nil
		}
	}

	if len(keys) == 1 && keys[0].Headers[friendlyName] == "" {
		return keys[0], nil
	}

	return nil, fmt.Errorf("%w: %s", ErrAliasNotFound, alias)
}

// LoadSigningKeyFromPEM reads an RSA private key that has already been
// exported from the keystore, in either PKCS#1 or PKCS#8 form.
func LoadSigningKeyFromPEM(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeystoreRead, err)
	}

	return DecodeSigningKeyFromPEM(data)
}

// DecodeSigningKeyFromPEM is LoadSigningKeyFromPEM for data already in memory.
func DecodeSigningKeyFromPEM(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM data found", ErrKeystoreDecode)
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrKeystoreDecode, err)
		}

		return key, nil
	case privateKeyType:
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrKeystoreDecode, err)
		}

		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
		}

		return rsaKey, nil
	}

	return nil, fmt.Errorf("%w: PEM block type %s", ErrUnsupportedKey, block.Type)
}
