package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/listener"
	"github.com/pixil98/go-adventure/internal/messaging"
	"github.com/pixil98/go-adventure/internal/observability"
	"github.com/pixil98/go-adventure/internal/player"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-service/service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	logger, err := cfg.Log.buildLogger(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	slog.SetDefault(logger)

	workers := service.WorkerList{}

	// Load the adventure content
	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	scenario := storage.Identifier(cfg.Scenario)
	if scenario != "" && dict.Scenarios.Get(scenario) == nil {
		return nil, fmt.Errorf("scenario %q not found", scenario)
	}

	cmdHandler, err := commands.NewDefaultHandler()
	if err != nil {
		return nil, fmt.Errorf("creating command handler: %w", err)
	}

	// Transcripts go through the embedded broker when it is enabled
	var publisher player.TurnPublisher
	isReady := func() bool { return true }
	if cfg.Nats.Enabled {
		natsServer, err := cfg.Nats.buildNatsServer()
		if err != nil {
			return nil, fmt.Errorf("creating nats server: %w", err)
		}
		workers["nats"] = natsServer
		publisher = messaging.NewTranscriptPublisher(natsServer)
		isReady = func() bool {
			select {
			case <-natsServer.Ready():
				return true
			default:
				return false
			}
		}

		if cfg.Nats.Audit {
			workers["audit"] = messaging.NewAuditor(natsServer)
		}
	}

	if cfg.Metrics.Addr != "" {
		metrics := observability.NewServer(cfg.Metrics.Addr, isReady)
		commands.RegisterMetrics(metrics.Registry())
		player.RegisterMetrics(metrics.Registry())
		listener.RegisterMetrics(metrics.Registry())
		workers["metrics"] = metrics
	}

	players := player.NewManager(dict, scenario, cmdHandler, publisher)
	players.SetWrapWidth(cfg.WrapWidth)
	workers["players"] = players

	// Create Listeners
	cm := listener.NewConnectionManager(players)
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		worker, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = worker
	}
	workers["listeners"] = &listeners

	return workers, nil
}
