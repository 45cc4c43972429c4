package container

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotBound is wrapped by the panic raised when Make is asked for an
	// abstract nobody registered.
	ErrNotBound = errors.New("container: no binding registered")

	// ErrBuildFailed is wrapped by the panic raised when Make is asked for a
	// singleton whose factory panicked on an earlier call.
	ErrBuildFailed = errors.New("container: singleton factory failed")
)

// Factory builds a value, resolving its own dependencies from c.
type Factory func(c *Container) any

// binding resolves once. Re-registering the abstract replaces the whole
// struct, so a new factory starts fresh.
type binding struct {
	factory Factory

	once     sync.Once
	instance any
	failure  error
}

// resolve runs the factory on first use. A panicking factory panics the
// first caller with its own value and every later caller with an error
// wrapping ErrBuildFailed.
func (b *binding) resolve(c *Container, abstract string) any {
	b.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				b.failure = fmt.Errorf("%w: [%s]: %v", ErrBuildFailed, abstract, r)
				panic(r)
			}
		}()
		b.instance = b.factory(c)
	})
	if b.failure != nil {
		panic(b.failure)
	}
	return b.instance
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container maps abstract names ("config", "log", "validator", ...) to the
// services the kernel and controllers share.
//
// Registration is expected at bootstrap; resolution is safe from concurrent
// request handlers.
type Container struct {
	mu       sync.RWMutex
	bindings map[string]*binding
}

// New creates an empty container. The container is bound to itself under
// "container".
func New() *Container {
	c := &Container{bindings: make(map[string]*binding)}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Singleton registers a factory whose result is built on first Make and
// reused afterwards.
//
//	c.Singleton("validator", func(c *container.Container) any {
//	    return validation.NewFactory(validation.WithLogger(container.Resolve[*slog.Logger](c, "log")))
//	})
func (c *Container) Singleton(abstract string, factory Factory) {
	if factory == nil {
		panic(fmt.Sprintf("container: nil factory for [%s]", abstract))
	}
	c.set(abstract, &binding{factory: factory})
}

// Instance registers an already-built value.
func (c *Container) Instance(abstract string, instance any) {
	b := &binding{instance: instance}
	b.once.Do(func() {})
	c.set(abstract, b)
}

func (c *Container) set(abstract string, b *binding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings[abstract] = b
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract. It panics with an error wrapping ErrNotBound
// when nothing is registered under that name.
func (c *Container) Make(abstract string) any {
	c.mu.RLock()
	b, ok := c.bindings[abstract]
	c.mu.RUnlock()
	if !ok {
		panic(fmt.Errorf("%w for [%s]", ErrNotBound, abstract))
	}
	return b.resolve(c, abstract)
}

// Resolve calls Make and type-asserts the result.
//
//	// Instead of: v := c.Make("validator").(*validation.Factory)
//	v := container.Resolve[*validation.Factory](c, "validator")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}
