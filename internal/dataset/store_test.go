package dataset

import (
	"testing"

	"career-compass/internal/domain/career"
)

func TestStore_SwapReplacesSnapshot(t *testing.T) {
	first := &Snapshot{Roles: []career.Role{{Name: "Old", RequiredSkills: []string{"A"}}}}
	second := &Snapshot{Roles: []career.Role{{Name: "New", RequiredSkills: []string{"B"}}}}

	st := NewStore(first)
	if st.Snapshot() != first {
		t.Fatalf("expected initial snapshot")
	}

	st.Swap(second)
	if st.Snapshot() != second {
		t.Fatalf("expected swapped snapshot")
	}
}

func TestStore_SwapNilKeepsCurrent(t *testing.T) {
	snap := &Snapshot{Roles: []career.Role{{Name: "R", RequiredSkills: []string{"A"}}}}
	st := NewStore(snap)

	st.Swap(nil)
	if st.Snapshot() != snap {
		t.Fatalf("nil swap must keep the current snapshot")
	}
}
