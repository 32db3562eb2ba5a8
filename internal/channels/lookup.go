package channels

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// FindGroup resolves ref against the current groups. ref may be a group id, a
// 1-based position in the group list, or a group name compared without regard
// to case. Ids win over positions, positions over names.
func (s *Store) FindGroup(ref string) (Group, error) {
	return s.Snapshot().FindGroup(ref)
}

// FindGroup resolves ref within the snapshot; see Store.FindGroup.
func (st State) FindGroup(ref string) (Group, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Group{}, fmt.Errorf("empty group reference: %w", ErrGroupNotFound)
	}
	for _, g := range st.Groups {
		if g.ID == ref {
			return g, nil
		}
	}
	if pos, err := strconv.Atoi(ref); err == nil {
		if pos >= 1 && pos <= len(st.Groups) {
			return st.Groups[pos-1], nil
		}
	}
	folder := cases.Fold()
	want := folder.String(ref)
	for _, g := range st.Groups {
		if folder.String(strings.TrimSpace(g.Name)) == want {
			return g, nil
		}
	}
	return Group{}, fmt.Errorf("group %q: %w", ref, ErrGroupNotFound)
}
