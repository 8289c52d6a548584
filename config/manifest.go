package config

import (
	"os"

	"get.pme.sh/hostsctl/hostsfile"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
	"gopkg.in/yaml.v3"
)

// Manifest is the YAML document describing one reconciliation run.
//
//	hostsfile: /etc/hosts
//	state: present
//	defaults: true
//	debuglog: /var/log/hostsctl.log
//	definitions:
//	  - ipaddress: 172.0.0.100
//	    hostnames: [pietje, lala]
type Manifest struct {
	HostsFile   string                 `yaml:"hostsfile"`
	DebugLog    string                 `yaml:"debuglog"`
	State       hostsfile.State        `yaml:"state"`
	Defaults    bool                   `yaml:"defaults"`
	Definitions []hostsfile.Definition `yaml:"definitions"`
}

func (m *Manifest) SetDefaults() {
	if m.State == "" {
		m.State = hostsfile.StatePresent
	}
}

func (m *Manifest) Validate() error {
	if !m.State.Valid() {
		return errors.Errorf("invalid state %q, expected present or absent", m.State)
	}
	for _, def := range m.Definitions {
		if def.Address == "" {
			return errors.New("definition missing ipaddress")
		}
	}
	return nil
}

func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrap(err, "parse manifest")
	}
	return m, nil
}

// ParseDefinitions parses an inline JSON definitions document, e.g.
// '[{"ipaddress":"10.0.0.1","hostnames":["db","db.local"]}]'.
func ParseDefinitions(text string) ([]hostsfile.Definition, error) {
	v, err := fastjson.Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parse definitions")
	}
	items, err := v.Array()
	if err != nil {
		return nil, errors.Wrap(err, "parse definitions")
	}

	defs := make([]hostsfile.Definition, 0, len(items))
	for _, item := range items {
		def := hostsfile.Definition{
			Address: string(item.GetStringBytes("ipaddress")),
		}
		if def.Address == "" {
			return nil, errors.New("definition missing ipaddress")
		}
		for _, name := range item.GetArray("hostnames") {
			def.Hostnames = append(def.Hostnames, string(name.GetStringBytes()))
		}
		defs = append(defs, def)
	}
	return defs, nil
}
