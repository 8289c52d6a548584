package cmd

import (
	"fmt"

	"get.pme.sh/hostsctl/config"
	"get.pme.sh/hostsctl/hostsfile"
	"get.pme.sh/hostsctl/ui"
	"get.pme.sh/hostsctl/xlog"

	"github.com/spf13/cobra"
)

func init() {
	applyCmd := &cobra.Command{
		Use:     "apply [manifest]",
		Short:   "Reconcile a hosts table against a manifest of definitions",
		Args:    cobra.MaximumNArgs(1),
		GroupID: refGroup("table", "Table Commands"),
	}
	flags := applyCmd.Flags()
	optFile := flags.StringP("hostsfile", "f", "", "Hosts table to reconcile (defaults to the system table)")
	optState := flags.StringP("state", "s", "", "Desired state for the whole batch (present|absent)")
	optDefaults := flags.Bool("defaults", false, "Inject the standard bootstrap entries first")
	optCheck := flags.BoolP("check", "n", false, "Report changes without writing")
	optDefs := flags.StringP("definitions", "d", "", "Inline JSON definitions")

	applyCmd.Run = func(cmd *cobra.Command, args []string) {
		m := &config.Manifest{}
		if len(args) == 1 {
			var err error
			if m, err = config.LoadManifest(args[0]); err != nil {
				ui.ExitWithError(err)
			}
		}
		if *optDefs != "" {
			defs, err := config.ParseDefinitions(*optDefs)
			if err != nil {
				ui.ExitWithError(err)
			}
			m.Definitions = append(m.Definitions, defs...)
		}
		if *optFile != "" {
			m.HostsFile = *optFile
		}
		if *optState != "" {
			m.State = hostsfile.State(*optState)
		}
		if *optDefaults {
			m.Defaults = true
		}
		if *config.DebugLog != "" {
			m.DebugLog = *config.DebugLog
		}
		m.SetDefaults()
		if err := m.Validate(); err != nil {
			ui.ExitWithError(err)
		}

		logger, closer := xlog.NewRunLogger(m.DebugLog, *config.Verbose)
		defer closer.Close()
		logger.Debug().Msg("start")

		res, err := hostsfile.Reconcile(hostsfile.Options{
			HostsFile:   m.HostsFile,
			State:       m.State,
			Defaults:    m.Defaults,
			Check:       *optCheck,
			Definitions: m.Definitions,
			Logger:      logger,
		})
		if err != nil {
			ui.ExitWithError(err)
		}
		fmt.Println(ui.RenderOkLine(res))
	}
	config.RootCommand.AddCommand(applyCmd)
}
