package cryptox

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/sealnotes/internal/common"
)

const (
	FieldKeyFile   = "field.key"
	SigningKeyFile = "signing.key"
)

// LoadOrCreateKey reads a hex-encoded key of size bytes from path. When the
// file does not exist a random key is generated and written with 0600 perms.
func LoadOrCreateKey(path string, size int) ([]byte, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		key, err := hex.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if len(key) != size {
			return nil, fmt.Errorf("%s: key must be %d bytes, got %d", path, size, len(key))
		}
		return key, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}

	key := common.GenerateRandByteArray(size)
	if err := os.WriteFile(path, []byte(hex.EncodeToString(key)), 0o600); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return key, nil
}

// LoadKeys returns the field cipher and signer persisted under dir.
func LoadKeys(dir string) (*FieldCipher, *Signer, error) {
	fieldKey, err := LoadOrCreateKey(filepath.Join(dir, FieldKeyFile), KeySize)
	if err != nil {
		return nil, nil, err
	}
	defer common.WipeByteArray(fieldKey)

	seed, err := LoadOrCreateKey(filepath.Join(dir, SigningKeyFile), ed25519.SeedSize)
	if err != nil {
		return nil, nil, err
	}
	defer common.WipeByteArray(seed)

	fc, err := NewFieldCipher(fieldKey)
	if err != nil {
		return nil, nil, err
	}
	signer, err := NewSigner(seed)
	if err != nil {
		return nil, nil, err
	}
	return fc, signer, nil
}
