package identity

import (
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"shipping/internal/entities"
)

// EnvelopeClaims подписанный конверт вызова: кто, какой метод, какой канистры, до какого момента.
// Args хэш тела запроса, так что подмена аргументов ломает конверт.
type EnvelopeClaims struct {
	PublicKey string `json:"pk"`
	Method    string `json:"method"`
	Args      string `json:"args"`
	jwt.RegisteredClaims
}

// ArgsHash hex SHA-256 тела вызова в том виде, в каком оно уходит по сети.
func ArgsHash(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

type Signer struct {
	identity      *Identity
	canisterID    string
	ingressExpiry time.Duration
	now           func() time.Time
}

func NewSigner(id *Identity, canisterID string, ingressExpiry time.Duration) *Signer {
	return &Signer{
		identity:      id,
		canisterID:    canisterID,
		ingressExpiry: ingressExpiry,
		now:           time.Now,
	}
}

func (s *Signer) Sign(method string, body []byte) (string, error) {
	now := s.now()
	claims := EnvelopeClaims{
		PublicKey: base64.StdEncoding.EncodeToString(s.identity.PublicKeyDER()),
		Method:    method,
		Args:      ArgsHash(body),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.identity.Principal().String(),
			Audience:  jwt.ClaimStrings{s.canisterID},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ingressExpiry)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(s.identity.privateKey)
	if err != nil {
		return "", fmt.Errorf("sign envelope: %w", err)
	}
	return signed, nil
}

type Verifier struct {
	canisterID string
	leeway     time.Duration
}

func NewVerifier(canisterID string, leeway time.Duration) *Verifier {
	return &Verifier{canisterID: canisterID, leeway: leeway}
}

// Verified данные проверенного конверта.
type Verified struct {
	Sender    entities.Principal
	Method    string
	ArgsHash  string
	Nonce     string
	ExpiresAt time.Time
}

func (v *Verifier) Verify(token string) (*Verified, error) {
	claims := &EnvelopeClaims{}
	_, err := jwt.ParseWithClaims(token, claims, keyFromClaims,
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithAudience(v.canisterID),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	)
	if err != nil {
		if errors.Is(err, ErrPrincipalMismatch) {
			return nil, ErrPrincipalMismatch
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("%w: missing nonce", ErrInvalidEnvelope)
	}
	if claims.Args == "" {
		return nil, fmt.Errorf("%w: missing args hash", ErrInvalidEnvelope)
	}

	return &Verified{
		Sender:    entities.Principal(claims.Subject),
		Method:    claims.Method,
		ArgsHash:  claims.Args,
		Nonce:     claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func keyFromClaims(token *jwt.Token) (any, error) {
	claims, ok := token.Claims.(*EnvelopeClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type", ErrInvalidEnvelope)
	}

	der, err := base64.StdEncoding.DecodeString(claims.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: public key encoding: %w", ErrInvalidEnvelope, err)
	}

	pub, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %w", ErrInvalidEnvelope, err)
	}
	edPub, ok := pub.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not ed25519", ErrInvalidEnvelope)
	}

	if SelfAuthenticating(der).String() != claims.Subject {
		return nil, ErrPrincipalMismatch
	}
	return edPub, nil
}
