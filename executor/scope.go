package executor

import (
	"maps"

	"go.creack.net/estel/value"
)

// Scope holds the bindings of one lexical level.
type Scope map[string]value.Value

// Chain is the stack of live scopes. Index 0 is the global scope,
// the last one is the innermost.
type Chain struct {
	scopes []Scope
}

// NewChain creates a chain holding only the given global scope.
// A nil global starts empty.
func NewChain(global Scope) *Chain {
	if global == nil {
		global = Scope{}
	}
	return &Chain{scopes: []Scope{global}}
}

// Push enters a new empty scope.
func (c *Chain) Push() {
	c.scopes = append(c.scopes, Scope{})
}

// Pop leaves the innermost scope, discarding its bindings.
// The global scope is never popped.
func (c *Chain) Pop() {
	if len(c.scopes) > 1 {
		c.scopes[len(c.scopes)-1] = nil
		c.scopes = c.scopes[:len(c.scopes)-1]
	}
}

// Depth returns the number of live scopes, 1 at top level.
func (c *Chain) Depth() int { return len(c.scopes) }

// Lookup resolves name from the innermost scope outwards.
func (c *Chain) Lookup(name string) (value.Value, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if v, ok := c.scopes[i][name]; ok {
			return v, true
		}
	}
	return value.Value{}, false
}

// Declare binds name in the innermost scope, shadowing outer bindings.
func (c *Chain) Declare(name string, v value.Value) {
	c.scopes[len(c.scopes)-1][name] = v
}

// Assign updates the innermost existing binding of name.
// Returns false, changing nothing, when no scope holds it.
func (c *Chain) Assign(name string, v value.Value) bool {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if _, ok := c.scopes[i][name]; ok {
			c.scopes[i][name] = v
			return true
		}
	}
	return false
}

// Global returns a copy of the global scope.
func (c *Chain) Global() Scope {
	return maps.Clone(c.scopes[0])
}
