package identity

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/zalando/go-keyring"
)

const sessionUser = "backend-session"

type Session struct {
	Identity  *Identity
	ExpiresAt time.Time
}

type storedSession struct {
	Seed      string    `json:"seed"`
	ExpiresAt time.Time `json:"expires_at"`
}

// KeyringStore хранит сессионный ключ в системном keyring.
type KeyringStore struct {
	service string
	ttl     time.Duration
	now     func() time.Time
}

func NewKeyringStore(service string, ttl time.Duration) *KeyringStore {
	return &KeyringStore{
		service: service,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *KeyringStore) Save(id *Identity) (*Session, error) {
	session := &Session{
		Identity:  id,
		ExpiresAt: s.now().Add(s.ttl),
	}

	data, err := json.Marshal(storedSession{
		Seed:      base64.StdEncoding.EncodeToString(id.Seed()),
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}

	if err := keyring.Set(s.service, sessionUser, string(data)); err != nil {
		return nil, fmt.Errorf("keyring set: %w", err)
	}
	return session, nil
}

func (s *KeyringStore) Load() (*Session, error) {
	secret, err := keyring.Get(s.service, sessionUser)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("keyring get: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal([]byte(secret), &stored); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	if !s.now().Before(stored.ExpiresAt) {
		return nil, ErrSessionExpired
	}

	seed, err := base64.StdEncoding.DecodeString(stored.Seed)
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	id, err := FromSeed(seed)
	if err != nil {
		return nil, err
	}

	return &Session{Identity: id, ExpiresAt: stored.ExpiresAt}, nil
}

// Delete идемпотентен: отсутствие сессии не ошибка.
func (s *KeyringStore) Delete() error {
	err := keyring.Delete(s.service, sessionUser)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete: %w", err)
	}
	return nil
}
