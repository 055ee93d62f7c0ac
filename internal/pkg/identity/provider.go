package identity

import (
	"bufio"
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

type Provider interface {
	Authenticate(ctx context.Context) (*Identity, error)
}

// KeyProvider выдает новый сессионный ключ без взаимодействия с пользователем.
type KeyProvider struct{}

func NewKeyProvider() *KeyProvider {
	return &KeyProvider{}
}

func (p *KeyProvider) Authenticate(ctx context.Context) (*Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Generate(rand.Reader)
}

// PromptProvider спрашивает у пользователя подтверждение новой сессии.
// Отмена ctx закрывает in, если это io.Closer: так горутина чтения завершается.
// Для прочих читателей она живет до ввода или EOF.
type PromptProvider struct {
	in  io.Reader
	out io.Writer
}

func NewPromptProvider(in io.Reader, out io.Writer) *PromptProvider {
	return &PromptProvider{in: in, out: out}
}

func (p *PromptProvider) Authenticate(ctx context.Context) (*Identity, error) {
	id, err := Generate(rand.Reader)
	if err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintf(p.out, "Authorize session %s? [y/N]: ", id.Principal()); err != nil {
		return nil, fmt.Errorf("write prompt: %w", err)
	}

	answer := make(chan string, 1)
	readErr := make(chan error, 1)
	go func() {
		line, err := bufio.NewReader(p.in).ReadString('\n')
		if err != nil && line == "" {
			readErr <- err
			return
		}
		answer <- line
	}()

	select {
	case <-ctx.Done():
		if c, ok := p.in.(io.Closer); ok {
			_ = c.Close()
		}
		return nil, ctx.Err()
	case err := <-readErr:
		if err == io.EOF {
			return nil, ErrDenied
		}
		return nil, fmt.Errorf("read answer: %w", err)
	case line := <-answer:
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return id, nil
		default:
			return nil, ErrDenied
		}
	}
}
