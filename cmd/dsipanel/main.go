package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/robfig/cron/v3"
	"periph.io/x/host/v3"

	"dsipanel/internal/config"
	"dsipanel/internal/dsi"
	appLog "dsipanel/internal/log"
	"dsipanel/internal/panel"
	"dsipanel/internal/reset"
	"dsipanel/internal/variant"
)

// dsipanel is a bring-up rehearsal tool for the supported DSI panels: it
// replays the full prepare/enable/disable/unprepare lifecycle against a
// tracing bus (and, outside dry-run mode, the real reset GPIO) so the
// command stream, page switches and mandated delays can be audited before
// the sequence is trusted on a display pipeline.

type flagConfig struct {
	configPath string
	model      string
	once       bool
	listModels bool
}

func main() {
	flags := parseFlags()

	if flags.listModels {
		for _, m := range variant.Models() {
			fmt.Println(m)
		}
		return
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}
	if flags.model != "" {
		conf.Model = flags.model
	}
	appLog.SetLevel(appLog.ParseLevel(conf.LogLevel))

	v, err := variant.Lookup(conf.Model)
	if err != nil {
		appLog.Error("unknown panel model", err, "model", conf.Model)
		os.Exit(1)
	}

	appLog.Info("dsipanel starting",
		"model", v.Model,
		"resolution", fmt.Sprintf("%dx%d", v.Mode.HActive, v.Mode.VActive),
		"refresh_hz", v.Mode.VRefresh(),
		"lanes", v.Config.Lanes,
		"table_entries", len(v.Table),
		"dry_run", conf.DryRun,
		"once", flags.once,
	)

	trace := &dsi.Trace{RealDelays: conf.RealDelays || !conf.DryRun}
	hw := panel.Hardware{Bus: trace, Reset: trace}
	if !conf.DryRun {
		// The DSI link itself is owned by the display controller; what
		// the tool can drive for real is the reset line, with delays
		// honored so the pulse timing can be scoped.
		if _, err := host.Init(); err != nil {
			appLog.Error("periph host init failed", err)
			os.Exit(1)
		}
		line, err := reset.Open(conf.ResetPin, conf.ResetActiveLow)
		if err != nil {
			appLog.Error("failed to open reset gpio", err, "pin", conf.ResetPin)
			os.Exit(1)
		}
		hw.Reset = line
	}

	p := panel.New(v.Model, v.Mode, v.Config, v.Table, hw)

	// Lifecycle calls must be serialized by the caller; cron jobs run on
	// their own goroutines, so everything funnels through one mutex.
	var mu sync.Mutex
	up := func() {
		mu.Lock()
		defer mu.Unlock()
		if err := p.Prepare(); err != nil {
			appLog.Error("prepare failed", err, "model", v.Model)
			return
		}
		if err := p.Enable(); err != nil {
			appLog.Error("enable failed", err, "model", v.Model)
		}
	}
	blank := func() {
		mu.Lock()
		defer mu.Unlock()
		if err := p.Disable(); err != nil {
			appLog.Error("disable failed", err, "model", v.Model)
		}
	}
	down := func() {
		mu.Lock()
		defer mu.Unlock()
		if err := p.Disable(); err != nil {
			appLog.Error("disable failed", err, "model", v.Model)
		}
		if err := p.Unprepare(); err != nil {
			appLog.Error("unprepare failed", err, "model", v.Model)
		}
	}

	up()
	appLog.Info("bring-up cycle complete",
		"state", p.State().String(),
		"writes", trace.Writes(),
		"total_delay_ms", trace.Delayed().Milliseconds(),
	)

	if flags.once {
		down()
		appLog.Info("dsipanel exiting", "writes", trace.Writes())
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	if conf.Schedule != nil {
		c := cron.New()
		if conf.Schedule.Blank != "" {
			if _, err := c.AddFunc(conf.Schedule.Blank, blank); err != nil {
				appLog.Error("invalid blank schedule", err, "cron", conf.Schedule.Blank)
				os.Exit(1)
			}
		}
		if conf.Schedule.Wake != "" {
			if _, err := c.AddFunc(conf.Schedule.Wake, up); err != nil {
				appLog.Error("invalid wake schedule", err, "cron", conf.Schedule.Wake)
				os.Exit(1)
			}
		}
		c.Start()
		defer c.Stop()
		appLog.Info("blank/wake schedule active",
			"blank", conf.Schedule.Blank, "wake", conf.Schedule.Wake)
	}

	<-ctx.Done()
	down()
	appLog.Info("dsipanel exiting", "writes", trace.Writes())
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "/etc/dsipanel/config.yaml", "Path to config file")
	flag.StringVar(&cfg.model, "model", "", "Panel model identifier (overrides config if set)")
	flag.BoolVar(&cfg.once, "once", false, "Run one prepare/enable/disable/unprepare cycle and exit")
	flag.BoolVar(&cfg.listModels, "list-models", false, "List supported panel models and exit")

	flag.Parse()

	return cfg
}
