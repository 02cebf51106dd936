package cryptox

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/sealnotes/internal/common"
)

// Signer produces and checks detached Ed25519 signatures over sealed content.
type Signer struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// NewSigner builds a Signer from a 32-byte Ed25519 seed.
func NewSigner(seed []byte) (*Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("signing seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &Signer{priv: priv, pub: priv.Public().(ed25519.PublicKey)}, nil
}

// Sign returns the base64 signature of msg.
func (s *Signer) Sign(msg string) string {
	return base64.StdEncoding.EncodeToString(ed25519.Sign(s.priv, []byte(msg)))
}

// Verify returns common.ErrInvalidSignature unless sig is a valid signature of msg.
func (s *Signer) Verify(msg, sig string) error {
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil || !ed25519.Verify(s.pub, []byte(msg), raw) {
		return common.ErrInvalidSignature
	}
	return nil
}
