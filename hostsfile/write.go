package hostsfile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Header is the first line of every serialized table.
const Header = "# Ansible managed"

// addrFieldWidth is the minimum width of the address column. Longer
// literals are not truncated.
const addrFieldWidth = 15

// String serializes the table in canonical order: the header, the
// IPv6 block sorted by literal, then the IPv4 block sorted by numeric
// value. Entries with an empty hostname set emit nothing.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString(Header + "\n")

	keys6 := lo.Keys(t.v6)
	slices.Sort(keys6)
	for _, addr := range keys6 {
		if names := t.v6[addr]; len(names) > 0 {
			fmt.Fprintf(&b, "%-*s %s\n", addrFieldWidth, addr, strings.Join(names, " "))
		}
	}

	keys4 := lo.Keys(t.v4)
	slices.Sort(keys4)
	for _, key := range keys4 {
		if names := t.v4[key]; len(names) > 0 {
			fmt.Fprintf(&b, "%-*s %s\n", addrFieldWidth, KeyToAddr(key), strings.Join(names, " "))
		}
	}
	return b.String()
}

func (t *Table) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
