package secret

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
)

// Alphabet is the 62-symbol set secrets are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// maxUnbiased is the largest multiple of len(Alphabet) that fits in a byte.
// Bytes at or above it are rejected so every symbol is equally likely.
const maxUnbiased = 256 - 256%len(Alphabet)

// Generator draws secrets from a secure randomness source.
//
// Contract:
// - Concurrency: safe for concurrent use if the source is (crypto/rand is).
// - Errors: a source failure is returned wrapped in ErrEntropyUnavailable.
type Generator struct {
	source io.Reader
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource overrides the randomness source. Intended for tests; production
// callers should rely on the crypto/rand default.
func WithSource(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.source = r
		}
	}
}

// NewGenerator creates a Generator reading from crypto/rand.Reader.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{source: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewGenerator()

// Generate returns a secret of length characters using crypto/rand.
func Generate(length int) (string, error) {
	return defaultGenerator.Generate(length)
}

// Generate returns a string of exactly length characters, each chosen
// independently and uniformly from Alphabet.
func (g *Generator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := io.ReadFull(g.source, buf); err != nil {
			return "", fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			out = append(out, Alphabet[int(b)%len(Alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}

// Generated pairs a definition with its generated value.
type Generated struct {
	Definition
	Value string
}

// GenerateFunc produces the value for a single definition.
type GenerateFunc func(ctx context.Context, def Definition) (string, error)

// GenerateCatalog generates a value for every definition in c, in
// registration order. It stops at the first failure.
func (g *Generator) GenerateCatalog(ctx context.Context, c *Catalog) ([]Generated, error) {
	return GenerateAll(ctx, c, func(_ context.Context, def Definition) (string, error) {
		return g.Generate(def.Length)
	})
}

// GenerateAll calls fn for every definition in c, in registration order.
// No partial result is returned on failure.
func GenerateAll(ctx context.Context, c *Catalog, fn GenerateFunc) ([]Generated, error) {
	defs := c.Definitions()
	out := make([]Generated, 0, len(defs))
	for _, def := range defs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, err := fn(ctx, def)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", def.Name, err)
		}
		out = append(out, Generated{Definition: def, Value: value})
	}
	return out, nil
}
