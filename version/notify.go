package version

import (
	"fmt"

	"github.com/AvaAvarai/IndimensionalYoutube/color"
	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/icon"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/style"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release exists.
// Lookup failures are only logged.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()
	if err != nil {
		log.Warnf("version check: %s", err)
		return
	}

	if newer, err := Compare(latest, constant.Version); err != nil || newer <= 0 {
		return
	}

	fmt.Printf("\n%s %s is available %s\n%s\n\n",
		style.Fg(color.Red)("▶"),
		style.Bold(constant.App+" "+latest),
		style.Faint("(you have "+constant.Version+")"),
		style.Faint(releaseURL(latest)),
	)
}

func releaseURL(version string) string {
	return "https://github.com/" + constant.Repository + "/releases/tag/v" + version
}
