package identity

import (
	"crypto/ed25519"
	"crypto/x509"
	"fmt"
	"io"

	"shipping/internal/entities"
)

// Identity сессионный ключ Ed25519, от имени которого подписываются вызовы.
type Identity struct {
	privateKey ed25519.PrivateKey
	publicDER  []byte
	principal  entities.Principal
}

func Generate(random io.Reader) (*Identity, error) {
	_, privateKey, err := ed25519.GenerateKey(random)
	if err != nil {
		return nil, fmt.Errorf("generate ed25519 key: %w", err)
	}
	return newIdentity(privateKey)
}

func FromSeed(seed []byte) (*Identity, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("ed25519 seed: want %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return newIdentity(ed25519.NewKeyFromSeed(seed))
}

func newIdentity(privateKey ed25519.PrivateKey) (*Identity, error) {
	der, err := x509.MarshalPKIXPublicKey(privateKey.Public())
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}
	return &Identity{
		privateKey: privateKey,
		publicDER:  der,
		principal:  SelfAuthenticating(der),
	}, nil
}

func (i *Identity) Principal() entities.Principal {
	return i.principal
}

func (i *Identity) PublicKeyDER() []byte {
	return append([]byte(nil), i.publicDER...)
}

func (i *Identity) Seed() []byte {
	return i.privateKey.Seed()
}
