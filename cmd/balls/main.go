package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"balls/internal/commands"
	"balls/internal/config"
	"balls/internal/env"
	"balls/internal/logger"
)

func main() {
	if _, err := env.Load(env.DefaultPath); err != nil {
		fmt.Fprintf(os.Stderr, "balls: %s: %v\n", env.DefaultPath, err)
	}
	reg := commands.NewRegistry()
	registerCommands(reg)
	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			reg.Usage(os.Stderr)
			return
		}
		fmt.Fprintf(os.Stderr, "balls: %v\n", err)
		os.Exit(1)
	}
}

func registerCommands(reg *commands.Registry) {
	runFlags := flag.NewFlagSet("run", flag.ContinueOnError)
	runConfig := runFlags.String("config", config.DefaultPath, "config file")
	reg.Register("run", "open the window and play", runFlags, func() error {
		log := logger.New(logger.LogFilePath)
		defer log.Close()
		cfg := loadConfig(*runConfig, log)
		return play(cfg, log)
	})

	simFlags := flag.NewFlagSet("simulate", flag.ContinueOnError)
	simConfig := simFlags.String("config", config.DefaultPath, "config file")
	simTicks := simFlags.Int("ticks", 10000, "ticks to simulate")
	reg.Register("simulate", "step the scene headless and check it stays in bounds", simFlags, func() error {
		log := logger.NewWriter(os.Stderr, logger.LevelFromEnv())
		cfg := loadConfig(*simConfig, log)
		return simulate(cfg, log, *simTicks, os.Stdout)
	})

	cfgFlags := flag.NewFlagSet("config", flag.ContinueOnError)
	cfgPath := cfgFlags.String("config", config.DefaultPath, "config file to write")
	reg.Register("config", "write the default config file", cfgFlags, func() error {
		if err := config.Save(*cfgPath, config.Default()); err != nil {
			return err
		}
		fmt.Println("wrote", *cfgPath)
		return nil
	})

	reg.SetDefault("run")
}

// loadConfig reads the config file and environment overrides. Problems are logged and the
// defaults (or the file's values) are kept.
func loadConfig(path string, log *logger.Logger) config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		log.Warn("using default config", "error", err)
	}
	fromFile := cfg
	if err := config.ApplyEnv(&cfg); err != nil {
		log.Warn("ignoring environment", "error", err)
		cfg = fromFile
	}
	if err := cfg.Validate(); err != nil {
		log.Warn("environment produced an invalid config", "error", err)
		cfg = fromFile
	}
	return cfg
}
