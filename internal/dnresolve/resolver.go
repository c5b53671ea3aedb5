package dnresolve

import (
	"sync"

	"github.com/KilimcininKorOglu/dsagent/agent"
)

// node is one step of a parent-DNT hierarchy: the path from root to a node
// spells out a DN's components root-first, mirroring the teacher's
// radix.Node, trimmed to the fields an exact-match walk needs (no PageID/
// SlotID/SubtreeCount — this core does not dictate on-disk layout).
type node struct {
	key      string
	children map[string]*node
	parent   *node
	hasEntry bool
	dnt      agent.DNT
}

func newNode(key string) *node {
	return &node{key: key, children: make(map[string]*node)}
}

// Resolver maps Distinguished Names to the DNT of the object they name by
// walking a parent-DNT hierarchy one RDN component at a time, root-first.
// It satisfies agent.DNResolver.
type Resolver struct {
	mu   sync.RWMutex
	root *node
}

// New returns an empty Resolver.
func New() *Resolver {
	return &Resolver{root: newNode("")}
}

// traverseToNode walks components from the root, one RDN per step,
// optionally creating missing intermediate nodes along the way. It mirrors
// radix.RadixTree.traverseToNode: look up or create the child keyed by the
// next component, then descend.
func (r *Resolver) traverseToNode(components []string, create bool) (*node, bool) {
	current := r.root
	for _, comp := range components {
		child, ok := current.children[comp]
		if !ok {
			if !create {
				return nil, false
			}
			child = newNode(comp)
			child.parent = current
			current.children[comp] = child
		}
		current = child
	}
	return current, true
}

// Register binds dn to dnt, overwriting any prior binding for the same DN.
// Invalid DNs are rejected rather than silently ignored.
func (r *Resolver) Register(dn string, dnt agent.DNT) error {
	components, err := pathComponents(dn)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n, _ := r.traverseToNode(components, true)
	n.hasEntry = true
	n.dnt = dnt
	return nil
}

// Unregister removes dn's binding, if any. The node itself is left in place
// (it may still be an ancestor of other bound DNs); only hasEntry is
// cleared.
func (r *Resolver) Unregister(dn string) error {
	components, err := pathComponents(dn)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.traverseToNode(components, false)
	if !ok {
		return nil
	}
	n.hasEntry = false
	return nil
}

// Resolve implements agent.DNResolver: it walks dn's components root-first
// to a node and returns the DNT bound there, or a NotFoundError if no such
// path exists, the path exists but was never bound, or dn is malformed.
func (r *Resolver) Resolve(dn string) (agent.DNT, error) {
	components, err := pathComponents(dn)
	if err != nil {
		return 0, &agent.NotFoundError{Identifier: dn}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.traverseToNode(components, false)
	if !ok || !n.hasEntry {
		return 0, &agent.NotFoundError{Identifier: dn}
	}
	return n.dnt, nil
}
