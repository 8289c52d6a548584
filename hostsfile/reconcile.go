package hostsfile

import (
	"os"
	"runtime"

	"get.pme.sh/hostsctl/xlog"

	"github.com/pkg/errors"
)

// DefaultPath is the system hosts table.
var DefaultPath = "/etc/hosts"

func init() {
	if runtime.GOOS == "windows" {
		DefaultPath = os.ExpandEnv("${SystemRoot}\\System32\\drivers\\etc\\hosts")
	}
}

// State is the desired state for a whole batch of definitions.
type State string

const (
	StatePresent State = "present"
	StateAbsent  State = "absent"
)

func (s State) Valid() bool {
	return s == StatePresent || s == StateAbsent
}

// Definition is one desired address-to-hostnames record. The State
// field is accepted for compatibility with per-entry documents but is
// ignored: the batch state applies uniformly to every definition.
type Definition struct {
	Address   string   `yaml:"ipaddress" json:"ipaddress"`
	Hostnames []string `yaml:"hostnames" json:"hostnames"`
	State     State    `yaml:"state,omitempty" json:"state,omitempty"`
}

// Options configures one reconciliation run.
type Options struct {
	HostsFile   string
	State       State
	Defaults    bool
	Check       bool
	Definitions []Definition
	Logger      *xlog.Logger
}

// Result is reported to the caller after a run.
type Result struct {
	Changed   bool   `json:"changed"`
	HostsFile string `json:"hostsfile"`
}

// Apply runs a batch of definitions against the table. With
// StateAbsent every definition's hostnames are removed; otherwise
// they are added. A definition with no hostnames is a no-op either
// way.
func (t *Table) Apply(defs []Definition, state State) error {
	for _, def := range defs {
		if len(def.Hostnames) == 0 {
			continue
		}
		var err error
		if state == StateAbsent {
			err = t.Remove(def.Address, def.Hostnames...)
		} else {
			err = t.Add(def.Address, def.Hostnames...)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Reconcile performs one read-modify-write cycle: load the table,
// optionally inject defaults, apply the batch, and rewrite the file
// only if content actually changed. Any classification or I/O error
// aborts before the write, leaving the file untouched. With
// Options.Check the write is suppressed but Changed is still
// reported.
func Reconcile(opts Options) (Result, error) {
	if opts.HostsFile == "" {
		opts.HostsFile = DefaultPath
	}
	res := Result{HostsFile: opts.HostsFile}

	t := New().WithLogger(opts.Logger)
	if err := t.LoadFile(opts.HostsFile); err != nil {
		return res, err
	}
	if opts.Defaults {
		if err := t.AddDefaults(); err != nil {
			return res, err
		}
	}
	if err := t.Apply(opts.Definitions, opts.State); err != nil {
		return res, err
	}

	res.Changed = t.Changed()
	if res.Changed && !opts.Check {
		data, err := t.MarshalText()
		if err != nil {
			return res, err
		}
		if err := os.WriteFile(opts.HostsFile, data, 0644); err != nil {
			return res, errors.Wrap(err, "write hosts table")
		}
	}
	return res, nil
}
