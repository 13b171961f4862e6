package main

import (
	"github.com/AvaAvarai/IndimensionalYoutube/cmd"
	"github.com/AvaAvarai/IndimensionalYoutube/config"
	"github.com/AvaAvarai/IndimensionalYoutube/internal/cache"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go cache.CollectGarbage()

	cmd.Execute()
}
