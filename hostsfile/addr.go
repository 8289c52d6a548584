package hostsfile

import (
	"encoding/binary"
	"net/netip"
	"regexp"

	"github.com/pkg/errors"
)

// ErrMalformedAddress is returned when a literal matches neither the
// IPv4 nor the IPv6 pattern, or cannot be encoded as a dotted quad.
var ErrMalformedAddress = errors.New("malformed address")

// https://stackoverflow.com/questions/53497/regular-expression-that-matches-valid-ipv6-addresses
const (
	v4Seg  = `(?:25[0-5]|(?:2[0-4]|1?[0-9])?[0-9])`
	v4Addr = `(?:(?:` + v4Seg + `\.){3}` + v4Seg + `)`
	v6Seg  = `(?:[0-9a-fA-F]{1,4})`
)

var v6Groups = []string{
	`(?:` + v6Seg + `:){1,4}:[^\s:]` + v4Addr,
	`::(?:ffff(?::0{1,4})?:)?[^\s:]` + v4Addr,
	`fe80:(?::` + v6Seg + `){0,4}%[0-9a-zA-Z]{1,}`,
	`:(?:(?::` + v6Seg + `){1,7}|:)`,
	v6Seg + `:(?:(?::` + v6Seg + `){1,6})`,
	`(?:` + v6Seg + `:){1,2}(?::` + v6Seg + `){1,5}`,
	`(?:` + v6Seg + `:){1,3}(?::` + v6Seg + `){1,4}`,
	`(?:` + v6Seg + `:){1,4}(?::` + v6Seg + `){1,3}`,
	`(?:` + v6Seg + `:){1,5}(?::` + v6Seg + `){1,2}`,
	`(?:` + v6Seg + `:){1,6}:` + v6Seg,
	`(?:` + v6Seg + `:){1,7}:`,
	`(?:` + v6Seg + `:){7}` + v6Seg,
}

func v6Alternation() string {
	s := ""
	for i, g := range v6Groups {
		if i > 0 {
			s += "|"
		}
		s += "(?:" + g + ")"
	}
	return s
}

// Anchored at the start only: a valid prefix classifies even with
// trailing garbage, matching historical hosts table tooling. The v4
// codec stays strict, so junk-suffixed IPv4 still fails the run.
var (
	reIPv4 = regexp.MustCompile(`^` + v4Addr)
	reIPv6 = regexp.MustCompile(`^(?:` + v6Alternation() + `)`)
)

// Family is the address family of a classified literal.
type Family int

const (
	Invalid Family = iota
	IPv4
	IPv6
)

// Classify matches addr against the IPv4 pattern first, then IPv6.
// At most one family matches a well-formed literal.
func Classify(addr string) Family {
	switch {
	case reIPv4.MatchString(addr):
		return IPv4
	case reIPv6.MatchString(addr):
		return IPv6
	}
	return Invalid
}

// AddrToKey converts a dotted-quad literal to its numeric value in
// network byte order. Shorthand forms are rejected.
func AddrToKey(addr string) (uint32, error) {
	ip, err := netip.ParseAddr(addr)
	if err != nil || !ip.Is4() {
		return 0, errors.Wrapf(ErrMalformedAddress, "%q", addr)
	}
	b := ip.As4()
	return binary.BigEndian.Uint32(b[:]), nil
}

// KeyToAddr converts a numeric value back to its dotted-quad literal.
func KeyToAddr(key uint32) string {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], key)
	return netip.AddrFrom4(b).String()
}
