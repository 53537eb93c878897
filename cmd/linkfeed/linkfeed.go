package linkfeed

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/scratchdata/linkfeed/pkg/api"
	"github.com/scratchdata/linkfeed/pkg/config"
	"github.com/scratchdata/linkfeed/pkg/storage"
)

func LogLevel(level string) zerolog.Level {
	switch level {
	case "panic":
		return zerolog.PanicLevel
	case "fatal":
		return zerolog.FatalLevel
	case "error":
		return zerolog.ErrorLevel
	case "warn":
		return zerolog.WarnLevel
	case "info":
		return zerolog.InfoLevel
	case "debug":
		return zerolog.DebugLevel
	case "trace":
		return zerolog.TraceLevel
	}
	return zerolog.InfoLevel
}

func SetupLogs(logConfig config.Logging) {
	// Equivalent of Lshortfile
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		short := file
		for i := len(file) - 1; i > 0; i-- {
			if file[i] == '/' {
				short = file[i+1:]
				break
			}
		}
		file = short
		return file + ":" + strconv.Itoa(line)
	}

	zerolog.SetGlobalLevel(LogLevel(logConfig.Level))

	if logConfig.JSONFormat {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Caller().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Caller().Logger()
	}
}

func GetStorageServices(c config.LinkFeedConfig) (*storage.Services, error) {
	return storage.New(c)
}

// Run serves the API until SIGINT or SIGTERM.
func Run(config config.LinkFeedConfig, storageServices *storage.Services) {
	log.Debug().Msg("Starting linkfeed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	if !config.API.Enabled {
		log.Warn().Msg("API is disabled in config, nothing to run")
		return
	}

	apiFunctions, err := api.NewLinkFeedAPI(config.API, storageServices)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to start API")
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer cancel()

		mux := api.CreateMux(config, apiFunctions)
		api.RunAPI(ctx, config.API, mux)
	}()

	// Set up channel to listen for SIGINT (Ctrl+C) and SIGTERM (kill command)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, os.Interrupt)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Debug().Str("signal", sig.String()).Msg("Received signal, stopping")
			cancel()
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	log.Debug().Msg("Done")
}
