package input

import (
	"fmt"
	"sort"

	"github.com/ja-he/timeruler/internal/control/action"
)

// Tree represents an input tree, which can contain various input sequences
// that terminate in an action.
//
// Example:
//
//	tree:                       mapping:
//
//	x
//	+-y
//	| +-z   -> action1          "xyz" -> action1
//	+-z     -> action2          "xz"  -> action2
//	z       -> action3          "z"   -> action3
type Tree struct {
	root    *node
	current *node
}

// node is either an inner node with children or a leaf with an action.
type node struct {
	children map[Key]*node
	action   action.Action
}

func newNode() *node { return &node{children: make(map[Key]*node)} }

func newLeaf(a action.Action) *node { return &node{action: a} }

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next, ok := t.current.children[k]
	switch {
	case !ok:
		t.current = t.root
		return false
	case next.action != nil:
		t.current = t.root
		next.action.Do()
		return true
	default:
		t.current = next
		return true
	}
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors, which is the
// case while a partial sequence has been entered.
func (t *Tree) CapturesInput() bool {
	return t.current != t.root
}

// ConstructInputTree construct a Tree for the given mappings of input
// sequence strings to actions.
// A sequence that is a prefix of another sequence can never be completed, so
// such mappings are rejected just like malformed keyspecs.
func ConstructInputTree(
	spec map[Keyspec]action.Action,
) (*Tree, error) {
	root := newNode()

	// deterministic order, so conflicts are reported the same way every time
	mappings := make([]Keyspec, 0, len(spec))
	for mapping := range spec {
		mappings = append(mappings, mapping)
	}
	sort.Slice(mappings, func(i, j int) bool { return mappings[i] < mappings[j] })

	for _, mapping := range mappings {
		sequence, err := ConfigKeyspecToKeys(mapping)
		if err != nil {
			return nil, fmt.Errorf("error converting config keyspec '%s': %w", mapping, err)
		}

		current := root
		for i, key := range sequence {
			last := i == len(sequence)-1
			next, ok := current.children[key]
			switch {
			case !ok && last:
				next = newLeaf(spec[mapping])
				current.children[key] = next
			case !ok:
				next = newNode()
				current.children[key] = next
			case next.action != nil || last:
				return nil, fmt.Errorf("keyspec '%s' conflicts with another mapping sharing its prefix", mapping)
			}
			current = next
		}
	}

	return &Tree{root: root, current: root}, nil
}

// ConstructInputTreeFromConfig constructs a Tree from a configured mapping of
// keyspecs to action names, resolving the names via the given actions.
func ConstructInputTreeFromConfig(
	keys map[string]string,
	actions map[Actionspec]action.Action,
) (*Tree, error) {
	spec := make(map[Keyspec]action.Action, len(keys))
	for keyspec, name := range keys {
		a, ok := actions[Actionspec(name)]
		if !ok {
			return nil, fmt.Errorf("keyspec '%s' maps to unknown action '%s'", keyspec, name)
		}
		spec[Keyspec(keyspec)] = a
	}
	return ConstructInputTree(spec)
}

// EmptyTree returns a pointer to an empty tree.
func EmptyTree() *Tree {
	root := newNode()
	return &Tree{root: root, current: root}
}
