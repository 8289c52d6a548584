package hostsfile

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDeduplicates(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Add("10.0.0.1", "a", "b", "b", "A"))
	assert.Equal(t, []string{"a", "b"}, tab.Lookup("10.0.0.1"))
	assert.True(t, tab.Changed())

	// A second identical call is a no-op.
	tab.Reset()
	require.NoError(t, tab.Add("10.0.0.1", "a", "b"))
	assert.Equal(t, []string{"a", "b"}, tab.Lookup("10.0.0.1"))
	assert.False(t, tab.Changed())
}

func TestAddSortsRegardlessOfInsertionOrder(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Add("10.0.0.1", "zulu", "alpha", "Mike"))
	assert.Equal(t, []string{"alpha", "mike", "zulu"}, tab.Lookup("10.0.0.1"))
}

func TestRemove(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Add("10.0.0.1", "a", "b", "c"))
	tab.Reset()

	require.NoError(t, tab.Remove("10.0.0.1", "a", "b"))
	assert.Equal(t, []string{"c"}, tab.Lookup("10.0.0.1"))
	assert.True(t, tab.Changed())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Add("10.0.0.1", "a"))
	tab.Reset()

	require.NoError(t, tab.Remove("10.0.0.1", "z"))
	assert.Equal(t, []string{"a"}, tab.Lookup("10.0.0.1"))
	assert.False(t, tab.Changed())

	// An address never seen is treated as an empty set.
	require.NoError(t, tab.Remove("10.0.0.2", "z"))
	assert.False(t, tab.Changed())
}

func TestRemoveIsCaseInsensitive(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Add("10.0.0.1", "Alpha", "beta"))
	tab.Reset()

	require.NoError(t, tab.Remove("10.0.0.1", "ALPHA"))
	assert.Equal(t, []string{"beta"}, tab.Lookup("10.0.0.1"))
	assert.True(t, tab.Changed())
}

func TestRemoveAllKeepsKey(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Add("10.0.0.1", "a", "b"))
	tab.Reset()

	require.NoError(t, tab.Remove("10.0.0.1", "a", "b"))
	assert.Empty(t, tab.Lookup("10.0.0.1"))
	assert.Len(t, tab.v4, 1)
	assert.Zero(t, tab.Len())
}

func TestMalformedAddress(t *testing.T) {
	tab := New()
	err := tab.Add("not-an-address", "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedAddress))

	err = tab.Remove("not-an-address", "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedAddress))
}

func TestFamilySeparation(t *testing.T) {
	tab := New()
	require.NoError(t, tab.Add("127.0.0.1", "localhost"))
	require.NoError(t, tab.Add("::1", "localhost"))
	assert.Len(t, tab.v4, 1)
	assert.Len(t, tab.v6, 1)
	assert.NotContains(t, tab.v6, "127.0.0.1")
}

func TestEqual(t *testing.T) {
	a, b := New(), New()
	require.NoError(t, a.Add("10.0.0.1", "x"))
	require.NoError(t, b.Add("10.0.0.1", "x"))
	assert.True(t, a.Equal(b))

	require.NoError(t, b.Add("::1", "localhost"))
	assert.False(t, a.Equal(b))
}
