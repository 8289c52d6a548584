package cmd

import (
	"fmt"

	"get.pme.sh/hostsctl/config"
	"get.pme.sh/hostsctl/hostsfile"
	"get.pme.sh/hostsctl/ui"

	"github.com/spf13/cobra"
)

func init() {
	renderCmd := &cobra.Command{
		Use:     "render [hostsfile]",
		Short:   "Print the canonical form of a hosts table without writing it",
		Args:    cobra.MaximumNArgs(1),
		GroupID: refGroup("table", "Table Commands"),
		Run: func(cmd *cobra.Command, args []string) {
			path := hostsfile.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			t := hostsfile.New()
			if err := t.LoadFile(path); err != nil {
				ui.ExitWithError(err)
			}
			fmt.Print(t.String())
		},
	}
	config.RootCommand.AddCommand(renderCmd)
}
