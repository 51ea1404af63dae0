package main

import (
	"os"

	"github.com/msto63/polycall/cmd/polycall/cmd"
	pcerror "github.com/msto63/polycall/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(pcerror.GetCode(err).ExitCode())
	}
}
