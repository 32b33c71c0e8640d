package hashroute

import "strings"

// Location is the addressable fragment a Router mirrors.
//
// Fragment returns the current fragment with or without a leading "#".
// SetFragment records a new history entry for fragment.
type Location interface {
	Fragment() string
	SetFragment(fragment string)
}

// FragmentReplacer is implemented by locations that can rewrite the current
// fragment without adding a history entry. Routers use it when normalizing.
type FragmentReplacer interface {
	ReplaceFragment(fragment string)
}

// MemoryLocation is an in-process Location with a history stack. It stands in
// for the browser when the router is driven outside a page.
type MemoryLocation struct {
	entries []string
	index   int
}

// NewMemoryLocation starts a history with a single entry.
func NewMemoryLocation(fragment string) *MemoryLocation {
	return &MemoryLocation{entries: []string{trimHash(fragment)}}
}

// Fragment returns the fragment of the current history entry.
func (l *MemoryLocation) Fragment() string {
	if l == nil || len(l.entries) == 0 {
		return ""
	}
	return l.entries[l.index]
}

// SetFragment pushes fragment, dropping any forward entries.
func (l *MemoryLocation) SetFragment(fragment string) {
	if l == nil {
		return
	}
	fragment = trimHash(fragment)
	if len(l.entries) == 0 {
		l.entries = []string{fragment}
		l.index = 0
		return
	}
	if l.entries[l.index] == fragment {
		return
	}
	l.entries = append(l.entries[:l.index+1], fragment)
	l.index = len(l.entries) - 1
}

// ReplaceFragment rewrites the current entry in place.
func (l *MemoryLocation) ReplaceFragment(fragment string) {
	if l == nil {
		return
	}
	if len(l.entries) == 0 {
		l.entries = []string{trimHash(fragment)}
		return
	}
	l.entries[l.index] = trimHash(fragment)
}

// Assign pushes fragment the way a manual address bar edit would. Callers
// follow it with Router.OnExternalChange.
func (l *MemoryLocation) Assign(fragment string) {
	l.SetFragment(fragment)
}

// Back moves one entry back. It reports false at the start of history.
func (l *MemoryLocation) Back() bool {
	if l == nil || l.index == 0 {
		return false
	}
	l.index--
	return true
}

// Forward moves one entry forward. It reports false at the end of history.
func (l *MemoryLocation) Forward() bool {
	if l == nil || l.index >= len(l.entries)-1 {
		return false
	}
	l.index++
	return true
}

// Len returns the number of history entries.
func (l *MemoryLocation) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

func trimHash(fragment string) string {
	return strings.TrimPrefix(fragment, "#")
}
