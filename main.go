package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/scratchdata/linkfeed/cmd/linkfeed"
	"github.com/scratchdata/linkfeed/pkg/config"
)

func main() {
	var (
		c   config.LinkFeedConfig
		err error
	)
	if len(os.Args) > 1 {
		c, err = config.Load(os.Args[1])
	} else {
		c, err = config.Default()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to load config file")
	}

	linkfeed.SetupLogs(c.Logging)

	storageServices, err := linkfeed.GetStorageServices(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to set up storage")
	}
	defer storageServices.Close()

	linkfeed.Run(c, storageServices)
}
