package hostsfile

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		addr string
		want Family
	}{
		{"127.0.0.1", IPv4},
		{"192.168.1.10", IPv4},
		{"255.255.255.255", IPv4},
		{"0.0.0.0", IPv4},
		{"::1", IPv6},
		{"fe00::0", IPv6},
		{"ff02::1", IPv6},
		{"2001:0db8:85a3:0000:0000:8a2e:0370:7334", IPv6},
		{"fe80::1%eth0", IPv6},
		{"::ffff:192.168.1.1", IPv6},
		{"notanip", Invalid},
		{"300.1.2.3", Invalid},
		{"", Invalid},
		{"hostname.example.com", Invalid},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.addr), "classify %q", tt.addr)
	}
}

func TestClassifyPrefixTolerance(t *testing.T) {
	// A valid literal followed by garbage still classifies; strictness
	// comes from the codec, not the classifier.
	assert.Equal(t, IPv4, Classify("192.168.1.1garbage"))
	assert.Equal(t, IPv6, Classify("fe00::0 trailing"))
}

func TestClassifyMutuallyExclusive(t *testing.T) {
	for _, addr := range []string{
		"127.0.0.1", "10.0.0.1", "::1", "fe00::0", "ff02::2",
		"::ffff:192.168.1.1", "2001:db8::8a2e:370:7334",
	} {
		both := reIPv4.MatchString(addr) && reIPv6.MatchString(addr)
		assert.False(t, both, "%q matched both families", addr)
	}
}

func TestAddrToKey(t *testing.T) {
	key, err := AddrToKey("192.168.1.10")
	require.NoError(t, err)
	assert.Equal(t, uint32(3232235786), key)

	_, err = AddrToKey("192.168.1.1garbage")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedAddress))

	// inet_aton shorthand is rejected.
	_, err = AddrToKey("127.1")
	assert.Error(t, err)

	_, err = AddrToKey("::1")
	assert.Error(t, err)
}

func TestKeyRoundTrip(t *testing.T) {
	for _, addr := range []string{
		"0.0.0.0", "127.0.0.1", "192.168.1.10", "10.1.2.3", "255.255.255.255",
	} {
		key, err := AddrToKey(addr)
		require.NoError(t, err)
		assert.Equal(t, addr, KeyToAddr(key))
	}
	assert.Equal(t, "192.168.1.10", KeyToAddr(3232235786))
}
