// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xchg

import "fmt"

// Node is an immutable named bundle of Inbox references with name-keyed
// lookup and a broadcast-write helper (spec.md §3 "Node", §4.4).
//
// A Node does not own its inboxes unless the caller uses
// DestroyAndInboxes: construction borrows the references given to it.
// The reference surface's variadic constructor is replaced here with an
// ordered slice parameter, per spec.md §9's "Variadic construction of
// nodes" design note — semantically identical, and it lets callers build
// the slice however they like.
type Node[T any] struct {
	name    string
	inboxes []*Inbox[T]
}

// NewNode builds an immutable Node from an ordered list of Inbox
// references. Construction fails when:
//
//	name == ""                 -> ErrEmptyName, "NODE_EMPTY_NAME"
//	len(inboxes) == 0          -> ErrNoInboxes, "NODE_NO_INBOXES"
//	any inboxes[i] == nil      -> ErrNilInbox, "NODE_NIL_INBOX"
//	a reference repeats        -> ErrDuplicateInbox, "NODE_MULTIPLE_EQUAL_INBOXES"
//
// All inboxes passed to a Node are expected to share the same message
// type T and, for Broadcast to be meaningful, the same message size —
// this is enforced by the type system for T, but not checked across
// differently-typed inboxes since a Node is itself typed by T.
func NewNode[T any](name string, inboxes []*Inbox[T]) (*Node[T], error) {
	if name == "" {
		report("NODE_EMPTY_NAME", "node name must not be empty")
		return nil, ErrEmptyName
	}
	if len(inboxes) == 0 {
		report("NODE_NO_INBOXES", "node requires at least one inbox")
		return nil, ErrNoInboxes
	}

	ordered := make([]*Inbox[T], len(inboxes))
	seen := make(map[*Inbox[T]]struct{}, len(inboxes))
	for i, ib := range inboxes {
		if ib == nil {
			report("NODE_NIL_INBOX", fmt.Sprintf("inbox at index %d is nil", i))
			return nil, ErrNilInbox
		}
		if _, dup := seen[ib]; dup {
			report("NODE_MULTIPLE_EQUAL_INBOXES", fmt.Sprintf("inbox %q referenced more than once", ib.Name()))
			return nil, ErrDuplicateInbox
		}
		seen[ib] = struct{}{}
		ordered[i] = ib
	}

	return &Node[T]{name: name, inboxes: ordered}, nil
}

// IsValid reports whether n is a non-nil, constructed Node.
func (n *Node[T]) IsValid() bool {
	return n != nil
}

// Name returns the node's name.
func (n *Node[T]) Name() string {
	return n.name
}

// NameIs reports whether n's name equals name.
func (n *Node[T]) NameIs(name string) bool {
	return n != nil && n.name == name
}

// Inboxes returns the node's ordered inbox list. The returned slice is a
// copy; mutating it does not affect the node.
func (n *Node[T]) Inboxes() []*Inbox[T] {
	out := make([]*Inbox[T], len(n.inboxes))
	copy(out, n.inboxes)
	return out
}

// SelectInbox returns the inbox in n whose name equals name, via linear
// scan, and whether one was found (spec.md §4.4 "Name lookup").
func (n *Node[T]) SelectInbox(name string) (*Inbox[T], bool) {
	for _, ib := range n.inboxes {
		if ib.NameIs(name) {
			return ib, true
		}
	}
	return nil, false
}

// Destroy releases the node's name and reference table, leaving the
// inboxes it referenced untouched (spec.md §6 destroy_node).
func (n *Node[T]) Destroy() {
	n.inboxes = nil
	n.name = ""
}

// DestroyAndInboxes releases the node and destroys each referenced
// inbox exactly once (spec.md §6 destroy_node_and_inboxes), for callers
// who elect combined ownership of the node and its inboxes.
func (n *Node[T]) DestroyAndInboxes() {
	for _, ib := range n.inboxes {
		ib.Destroy()
	}
	n.Destroy()
}

// Broadcast writes payload to every inbox in the node, in list order,
// using WriteSpin (spec.md §4.3.4). It blocks until every inbox has
// received the message. Every inbox in a Node[T] holds messages of type
// T, so all receivers share the same message size by construction.
func (n *Node[T]) Broadcast(payload *T) {
	for _, ib := range n.inboxes {
		ib.WriteSpin(payload)
	}
}

// String renders a short diagnostic summary: name and inbox count.
func (n *Node[T]) String() string {
	if n == nil {
		return "xchg.Node(nil)"
	}
	return fmt.Sprintf("xchg.Node{name:%q inboxes:%d}", n.name, len(n.inboxes))
}
