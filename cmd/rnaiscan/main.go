// Command rnaiscan is a thin demonstration CLI over the rnai core
// facade: it is not the dashboard, only a way to drive build_index and
// run_pipeline from the command line.
package main

import (
	"rnaiforge/internal/appshell"
	"rnaiforge/internal/cliapp"
)

func main() {
	appshell.Main(cliapp.Run)
}
