package order

import (
	"slices"
	"sort"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{
			name: "natural order preserved",
			ids:  []string{"a", "b", "c"},
			want: []string{"a", "b", "c"},
		},
		{
			name: "duplicates dropped first wins",
			ids:  []string{"a", "b", "a", "c", "b"},
			want: []string{"a", "b", "c"},
		},
		{
			name: "empty",
			ids:  nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.ids).IDs()
			if !slices.Equal(got, tt.want) {
				t.Errorf("New(%v) = %v, want %v", tt.ids, got, tt.want)
			}
		})
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		id   string
		to   int
		want []string
	}{
		{
			name: "move to front",
			id:   "c",
			to:   0,
			want: []string{"c", "a", "b", "d", "e"},
		},
		{
			name: "move to back",
			id:   "b",
			to:   4,
			want: []string{"a", "c", "d", "e", "b"},
		},
		{
			name: "move right by one",
			id:   "a",
			to:   1,
			want: []string{"b", "a", "c", "d", "e"},
		},
		{
			name: "move to current index is a no-op",
			id:   "c",
			to:   2,
			want: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "target clamped above",
			id:   "a",
			to:   99,
			want: []string{"b", "c", "d", "e", "a"},
		},
		{
			name: "target clamped below",
			id:   "d",
			to:   -3,
			want: []string{"d", "a", "b", "c", "e"},
		},
		{
			name: "unknown id is a no-op",
			id:   "z",
			to:   0,
			want: []string{"a", "b", "c", "d", "e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New([]string{"a", "b", "c", "d", "e"})
			got := o.Move(tt.id, tt.to).IDs()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Move(%q, %d) = %v, want %v", tt.id, tt.to, got, tt.want)
			}
		})
	}
}

func TestMoveIsPermutation(t *testing.T) {
	o := New([]string{"a", "b", "c", "d", "e"})
	for _, id := range o.IDs() {
		for to := -1; to <= o.Len(); to++ {
			got := o.Move(id, to).IDs()
			if len(got) != o.Len() {
				t.Fatalf("Move(%q, %d) changed length: %d", id, to, len(got))
			}
			sorted := slices.Clone(got)
			sort.Strings(sorted)
			if !slices.Equal(sorted, []string{"a", "b", "c", "d", "e"}) {
				t.Fatalf("Move(%q, %d) = %v is not a permutation", id, to, got)
			}
		}
	}
}

func TestMoveDoesNotMutateReceiver(t *testing.T) {
	o := New([]string{"a", "b", "c"})
	_ = o.Move("c", 0)
	if got := o.IDs(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("receiver mutated: %v", got)
	}
}

func TestReset(t *testing.T) {
	o := New([]string{"a", "b", "c", "d", "e"})
	o = o.Move("e", 0).Move("c", 4)

	got := o.Reset([]string{"a", "b", "c", "d", "e"}).IDs()
	want := []string{"a", "b", "c", "d", "e"}
	if !slices.Equal(got, want) {
		t.Errorf("Reset = %v, want %v", got, want)
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		reorder func(Order) Order
		next    []string
		want    []string
	}{
		{
			name:    "disjoint set resets to natural order",
			initial: []string{"a", "b", "c"},
			next:    []string{"x", "y", "z"},
			want:    []string{"x", "y", "z"},
		},
		{
			name:    "stale ids dropped custom order kept",
			initial: []string{"a", "b", "c", "d"},
			reorder: func(o Order) Order { return o.Move("d", 0) },
			next:    []string{"a", "c", "d"},
			want:    []string{"d", "a", "c"},
		},
		{
			name:    "new ids appended in natural order",
			initial: []string{"a", "b"},
			reorder: func(o Order) Order { return o.Move("b", 0) },
			next:    []string{"a", "b", "c", "d"},
			want:    []string{"b", "a", "c", "d"},
		},
		{
			name:    "empty next yields empty order",
			initial: []string{"a", "b"},
			next:    nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(tt.initial)
			if tt.reorder != nil {
				o = tt.reorder(o)
			}
			got := o.Reconcile(tt.next).IDs()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Reconcile(%v) = %v, want %v", tt.next, got, tt.want)
			}
		})
	}
}

func TestIndexOf(t *testing.T) {
	o := New([]string{"a", "b", "c"})
	if got := o.IndexOf("b"); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := o.IndexOf("z"); got != -1 {
		t.Errorf("IndexOf(z) = %d, want -1", got)
	}
	if !o.Contains("a") || o.Contains("z") {
		t.Error("Contains gave wrong answers")
	}
}
