package hostsfile

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// UnmarshalText populates the table from line-oriented hosts text.
// Each line is truncated at the first '#', trimmed, lowercased and
// whitespace-split; the first token is the address, the rest are
// hostnames. Loading is expressed as additions, and the changed flag
// is reset afterwards so that existing content never counts as a
// pending change.
func (t *Table) UnmarshalText(data []byte) error {
	for _, line := range strings.Split(string(data), "\n") {
		line, _, _ = strings.Cut(line, "#")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cols := strings.Fields(strings.ToLower(line))
		if err := t.Add(cols[0], cols[1:]...); err != nil {
			return err
		}
	}
	t.Reset()
	return nil
}

// LoadFile populates the table from path. A missing file is not an
// error: the table simply stays empty.
func (t *Table) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.log.Debug().Str("path", path).Msg("hosts table does not exist")
			return nil
		}
		return errors.Wrap(err, "read hosts table")
	}
	return t.UnmarshalText(data)
}
