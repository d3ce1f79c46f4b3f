package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = (`
          __                      __
  ____ _ / /_   _____ ____ _ ____/ /____
 / __ '// __ \ / ___// __ '// __  // ___/
/ /_/ // /_/ // /   / /_/ // /_/ // /__
\__,_//_.___//_/    \__,_/ \__,_/ \___/
`)

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\thttp resource discovery\n\n")
}

// GetUpdateCallback returns a callback function that updates abrade
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("abrade", version)()
	}
}
