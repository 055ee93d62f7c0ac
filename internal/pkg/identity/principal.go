package identity

import (
	"bytes"
	"crypto/sha256"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"

	"shipping/internal/entities"
)

const (
	selfAuthenticatingSuffix = 0x02
	groupSize                = 5
	maxPrincipalBytes        = 29
)

var principalEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// PrincipalFromBytes текстовая форма: base32(crc32 || bytes) в нижнем регистре, группы по 5 через дефис.
func PrincipalFromBytes(raw []byte) entities.Principal {
	checksum := make([]byte, 4, 4+len(raw))
	binary.BigEndian.PutUint32(checksum, crc32.ChecksumIEEE(raw))

	encoded := strings.ToLower(principalEncoding.EncodeToString(append(checksum, raw...)))

	var b strings.Builder
	for i := 0; i < len(encoded); i += groupSize {
		if i > 0 {
			b.WriteByte('-')
		}
		end := min(i+groupSize, len(encoded))
		b.WriteString(encoded[i:end])
	}
	return entities.Principal(b.String())
}

// SelfAuthenticating принципал, выведенный из DER-кодированного публичного ключа.
func SelfAuthenticating(derPublicKey []byte) entities.Principal {
	hash := sha256.Sum224(derPublicKey)
	raw := append(hash[:], selfAuthenticatingSuffix)
	return PrincipalFromBytes(raw)
}

// ParsePrincipal проверяет текстовую форму и возвращает байты принципала.
func ParsePrincipal(text string) ([]byte, error) {
	compact := strings.ToUpper(strings.ReplaceAll(text, "-", ""))
	decoded, err := principalEncoding.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPrincipal, text, err)
	}
	if len(decoded) < 4 || len(decoded)-4 > maxPrincipalBytes {
		return nil, fmt.Errorf("%w: %q: bad length", ErrInvalidPrincipal, text)
	}

	raw := decoded[4:]
	if !bytes.Equal(decoded[:4], binary.BigEndian.AppendUint32(nil, crc32.ChecksumIEEE(raw))) {
		return nil, fmt.Errorf("%w: %q: checksum mismatch", ErrInvalidPrincipal, text)
	}
	if PrincipalFromBytes(raw).String() != text {
		return nil, fmt.Errorf("%w: %q: not in canonical form", ErrInvalidPrincipal, text)
	}
	return raw, nil
}
