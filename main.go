package main

import (
	"fmt"
	"os"

	"get.pme.sh/hostsctl/cmd"
	"get.pme.sh/hostsctl/revision"
)

func main() {
	if len(os.Args) == 2 {
		switch os.Args[1] {
		case "--version", "-v", "version", "v", "ver":
			fmt.Println(revision.GetVersion())
			os.Exit(0)
		}
	}
	cmd.Execute()
}
