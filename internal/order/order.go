// Package order maintains the displayed sequence of card identifiers.
//
// All operations are pure: they return a new Order and never mutate the
// receiver. Invalid input (unknown ids, out-of-range positions) degrades to a
// no-op or a clamp rather than an error, since a reorder gesture has no useful
// failure surface to report into.
package order

import "slices"

// Order is the current sequence of item ids as displayed.
type Order struct {
	ids []string
}

// New creates an Order from the items' natural sequence.
// Duplicate ids are dropped, keeping the first occurrence.
func New(ids []string) Order {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return Order{ids: out}
}

// IDs returns a copy of the current sequence.
func (o Order) IDs() []string {
	return slices.Clone(o.ids)
}

// Len returns the number of ids in the sequence.
func (o Order) Len() int {
	return len(o.ids)
}

// IndexOf returns the position of id, or -1 if it is not in the sequence.
func (o Order) IndexOf(id string) int {
	return slices.Index(o.ids, id)
}

// Contains reports whether id is part of the sequence.
func (o Order) Contains(id string) bool {
	return o.IndexOf(id) >= 0
}

// Move removes id from its current position and reinserts it at to,
// preserving the relative order of all other ids. The target position is
// clamped to [0, Len()-1]. Moving to the current position, or moving an id
// that is not in the sequence, returns the sequence unchanged.
func (o Order) Move(id string, to int) Order {
	from := o.IndexOf(id)
	if from < 0 {
		return o
	}
	to = clamp(to, 0, len(o.ids)-1)
	if to == from {
		return o
	}

	out := make([]string, 0, len(o.ids))
	out = append(out, o.ids[:from]...)
	out = append(out, o.ids[from+1:]...)
	out = slices.Insert(out, to, id)
	return Order{ids: out}
}

// Reset discards the current sequence and reinitializes from the items'
// natural order.
func (o Order) Reset(ids []string) Order {
	return New(ids)
}

// Reconcile adapts the sequence to a new item set: ids no longer present are
// dropped, and ids not yet in the sequence are appended in their natural
// order. Swapping to a fully disjoint set therefore yields the new set's
// natural sequence.
func (o Order) Reconcile(ids []string) Order {
	next := New(ids)
	known := make(map[string]struct{}, len(next.ids))
	for _, id := range next.ids {
		known[id] = struct{}{}
	}

	out := make([]string, 0, len(next.ids))
	kept := make(map[string]struct{}, len(next.ids))
	for _, id := range o.ids {
		if _, ok := known[id]; !ok {
			continue
		}
		out = append(out, id)
		kept[id] = struct{}{}
	}
	for _, id := range next.ids {
		if _, ok := kept[id]; !ok {
			out = append(out, id)
		}
	}
	return Order{ids: out}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
