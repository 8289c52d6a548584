package cmd

import (
	"get.pme.sh/hostsctl/config"
	"get.pme.sh/hostsctl/revision"
	"get.pme.sh/hostsctl/ui"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

func refGroup(id, name string) string {
	if !config.RootCommand.ContainsGroup(id) {
		config.RootCommand.AddGroup(&cobra.Group{
			ID:    id,
			Title: name + ":",
		})
	}
	return id
}

func Execute() {
	maxprocs.Set()
	config.RootCommand.Short += ui.FaintStyle.Render(" (" + revision.GetVersion() + ")")
	if err := config.RootCommand.Execute(); err != nil {
		ui.ExitWithError(err)
	}
}
