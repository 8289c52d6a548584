package hostsfile

import (
	"maps"
	"slices"
	"strings"

	"get.pme.sh/hostsctl/xlog"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Table is the in-memory model of one hosts table: IPv4 entries keyed
// by numeric address, IPv6 entries keyed by literal string, each
// mapping to a sorted, deduplicated list of lowercase hostnames.
//
// The changed flag is monotone within a run: it is set by any mutation
// that alters stored content and cleared only by Reset after the
// initial load.
type Table struct {
	v4      map[uint32][]string
	v6      map[string][]string
	changed bool
	log     *xlog.Logger
}

func New() *Table {
	return &Table{
		v4:  make(map[uint32][]string),
		v6:  make(map[string][]string),
		log: xlog.Nop(),
	}
}

func (t *Table) WithLogger(log *xlog.Logger) *Table {
	if log != nil {
		t.log = log
	}
	return t
}

func (t *Table) Changed() bool { return t.changed }

// Reset clears the changed flag without altering stored content. Used
// once after the initial load, so that loading never registers as a
// pending change.
func (t *Table) Reset() { t.changed = false }

func (t *Table) markChanged() {
	if !t.changed {
		t.changed = true
		t.log.Debug().Msg("changed state set to true")
	}
}

func uniqSorted(names []string) []string {
	names = lo.Uniq(names)
	slices.Sort(names)
	return names
}

func (t *Table) addNames(set []string, names []string) []string {
	for _, name := range names {
		name = strings.ToLower(name)
		if slices.Contains(set, name) {
			continue
		}
		t.log.Debug().Str("name", name).Msg("add element")
		set = append(set, name)
		t.markChanged()
	}
	return uniqSorted(set)
}

func (t *Table) removeNames(set []string, names []string) []string {
	for _, name := range names {
		next := set[:0:len(set)]
		for _, have := range set {
			if strings.EqualFold(have, name) {
				t.log.Debug().Str("name", have).Msg("remove element")
				t.markChanged()
			} else {
				next = append(next, have)
			}
		}
		set = next
	}
	return uniqSorted(set)
}

// Add ensures every name is present for addr, case-folded to
// lowercase. Names already present are ignored and do not set the
// changed flag.
func (t *Table) Add(addr string, names ...string) error {
	t.log.Debug().Str("addr", addr).Strs("names", names).Msg("add entry")
	switch Classify(addr) {
	case IPv4:
		key, err := AddrToKey(addr)
		if err != nil {
			return err
		}
		t.v4[key] = t.addNames(t.v4[key], names)
	case IPv6:
		t.v6[addr] = t.addNames(t.v6[addr], names)
	default:
		return errors.Wrapf(ErrMalformedAddress, "%q", addr)
	}
	return nil
}

// Remove drops every matching name for addr, case-insensitively. An
// absent address or name is not an error and does not set the changed
// flag. A set reduced to empty stays in the mapping; it simply emits
// no line when serialized.
func (t *Table) Remove(addr string, names ...string) error {
	t.log.Debug().Str("addr", addr).Strs("names", names).Msg("remove entry")
	switch Classify(addr) {
	case IPv4:
		key, err := AddrToKey(addr)
		if err != nil {
			return err
		}
		t.v4[key] = t.removeNames(t.v4[key], names)
	case IPv6:
		t.v6[addr] = t.removeNames(t.v6[addr], names)
	default:
		return errors.Wrapf(ErrMalformedAddress, "%q", addr)
	}
	return nil
}

// Lookup returns the stored hostname set for addr, if any.
func (t *Table) Lookup(addr string) []string {
	switch Classify(addr) {
	case IPv4:
		if key, err := AddrToKey(addr); err == nil {
			return t.v4[key]
		}
	case IPv6:
		return t.v6[addr]
	}
	return nil
}

// Equal reports whether both tables store the same keys with the same
// hostname sets. Empty sets count: a key held open by removal differs
// from a key never seen.
func (t *Table) Equal(other *Table) bool {
	return maps.EqualFunc(t.v4, other.v4, slices.Equal) &&
		maps.EqualFunc(t.v6, other.v6, slices.Equal)
}

// Len returns the number of non-empty entries.
func (t *Table) Len() (n int) {
	for _, names := range t.v4 {
		if len(names) > 0 {
			n++
		}
	}
	for _, names := range t.v6 {
		if len(names) > 0 {
			n++
		}
	}
	return
}
