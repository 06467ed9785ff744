package secret

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Definition describes a secret to generate.
type Definition struct {
	// Name is the environment variable key, e.g. JWT_SECRET.
	Name string

	// Length is the number of characters to generate.
	Length int

	// Description is a human-readable purpose shown next to the value.
	Description string
}

var namePattern = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)

// Validate checks that d can be registered.
func (d Definition) Validate() error {
	if !namePattern.MatchString(d.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, d.Name)
	}
	if d.Length <= 0 {
		return fmt.Errorf("%w: %s has length %d", ErrInvalidLength, d.Name, d.Length)
	}
	return nil
}

// Catalog is an ordered set of definitions keyed by name. It is safe for
// concurrent use; the command line registers and reads from one goroutine.
type Catalog struct {
	mu    sync.RWMutex
	order []string
	defs  map[string]Definition
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{defs: make(map[string]Definition)}
}

// Register appends a definition.
func (c *Catalog) Register(def Definition) error {
	def.Name = strings.TrimSpace(def.Name)
	if err := def.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.defs[def.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
	}
	c.defs[def.Name] = def
	c.order = append(c.order, def.Name)
	return nil
}

// Lookup returns the definition registered under name.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	def, ok := c.defs[strings.TrimSpace(name)]
	return def, ok
}

// Definitions returns the definitions in registration order.
func (c *Catalog) Definitions() []Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Definition, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.defs[name])
	}
	return out
}

// Names returns registered names in registration order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]string(nil), c.order...)
}

// Len returns the number of registered definitions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Deployment secret definitions, in display order.
var (
	JWTSecret = Definition{
		Name:        "JWT_SECRET",
		Length:      64,
		Description: "Used for session management and JWT token signing (64 characters)",
	}
	WebhookSecret = Definition{
		Name:        "WEBHOOK_SECRET",
		Length:      32,
		Description: "Used for webhook authentication (32 characters)",
	}
	EncryptionKey = Definition{
		Name:        "SECRETS_ENCRYPTION_KEY",
		Length:      32,
		Description: "Used for encrypting stored secrets (32 characters)",
	}
)

// DefaultCatalog returns a new catalog holding the deployment secrets.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, def := range []Definition{JWTSecret, WebhookSecret, EncryptionKey} {
		if err := c.Register(def); err != nil {
			panic(err)
		}
	}
	return c
}
