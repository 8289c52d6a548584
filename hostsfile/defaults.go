package hostsfile

// AddDefaults injects the standard loopback and multicast bootstrap
// entries. Defaults are always additions, regardless of the desired
// state of the batch that follows.
func (t *Table) AddDefaults() error {
	defaults := []struct {
		addr  string
		names []string
	}{
		{"::1", []string{"ip6-localhost", "ip6-loopback"}},
		{"::1", []string{"localhost", "localhost.localdomain"}},
		{"::1", []string{"localhost6", "localhost6.localdomain6"}},
		{"fe00::0", []string{"ip6-localnet", "ip6-mcastprefix"}},
		{"ff02::1", []string{"ip6-allnodes"}},
		{"ff02::2", []string{"ip6-allrouters"}},
		{"127.0.0.1", []string{"localhost", "localhost.localdomain"}},
		{"127.0.0.1", []string{"localhost4", "localhost4.localdomain4"}},
	}
	for _, d := range defaults {
		if err := t.Add(d.addr, d.names...); err != nil {
			return err
		}
	}
	return nil
}
