// Command myscript opens the example script GUI in the terminal.
//
// Usage:
//
//	myscript [flags]
//
// Flags:
//
//	-c, --config         TOML settings file (default: myscript.toml, or $SCRIPTGUI_CONFIG)
//	    --log-level      debug, info, warn or error
//	    --locale         language of the GUI chrome, e.g. en or de
//	-d, --device         evdev node for game-pad input, e.g. /dev/input/event3
//	-s, --start          navigation key of the first screen
//	    --no-alt-screen  draw in the main terminal buffer
//	    --print-config   print a default configuration file and exit
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/highorder/scriptgui/pkg/scriptgui"
	"github.com/highorder/scriptgui/pkg/scriptgui/config"
	"github.com/highorder/scriptgui/pkg/scriptgui/input"
	"github.com/highorder/scriptgui/pkg/scriptgui/theme"
	"github.com/highorder/scriptgui/pkg/scriptgui/tui"
)

// CLI is the command line of myscript. Flags override the config file.
type CLI struct {
	Config      string `short:"c" help:"Configuration file path" env:"SCRIPTGUI_CONFIG" default:"myscript.toml" type:"path"`
	LogLevel    string `help:"Log level: debug, info, warn or error"`
	Locale      string `help:"Language of the GUI chrome, e.g. en or de"`
	Device      string `short:"d" help:"evdev device for game-pad input"`
	Start       string `short:"s" help:"Navigation key of the first screen"`
	NoAlt       bool   `name:"no-alt-screen" help:"Draw in the main terminal buffer"`
	PrintConfig bool   `name:"print-config" help:"Print a default configuration file and exit"`
}

// settings merges the flags over the config file.
func (c *CLI) settings() (config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return cfg, err
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.Locale != "" {
		cfg.Locale = c.Locale
	}
	if c.Device != "" {
		cfg.Input.Device = c.Device
	}
	if c.Start != "" {
		cfg.StartScreen = c.Start
	}
	return cfg, cfg.Validate()
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("myscript"),
		kong.Description("Example control panel for an automation script."),
		kong.UsageOnError(),
	)

	if cli.PrintConfig {
		fmt.Print(config.DefaultTOML())
		return
	}

	if err := run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "myscript: %v\n", err)
		os.Exit(1)
	}
}

func run(cli *CLI) error {
	cfg, err := cli.settings()
	if err != nil {
		return scriptgui.NewInfrastructureError(scriptgui.OpLoadConfig, err)
	}

	if err := scriptgui.Init(scriptgui.Options{
		LogPath:  cfg.LogPath,
		LogLevel: cfg.LogLevel,
		Locale:   cfg.Locale,
	}); err != nil {
		return err
	}
	defer scriptgui.Close()

	logger := scriptgui.GetLogger()
	theme.Apply(theme.FromConfig(cfg.Theme))

	keymap, err := input.NewKeymap(cfg.Keys)
	if err != nil {
		return scriptgui.NewInfrastructureError(scriptgui.OpKeymap, err)
	}

	opts := tui.Options{
		StartScreen: cfg.StartScreen,
		Keymap:      keymap,
		AltScreen:   !cli.NoAlt,
	}
	if _, err := os.Stat(cli.Config); err == nil {
		opts.ConfigPath = cli.Config
	}

	if cfg.Input.Device != "" {
		repeater := input.NewRepeaterWithTiming(cfg.Input.RepeatDelayDuration(), cfg.Input.RepeatIntervalDuration())
		device, err := input.OpenDevice(cfg.Input.Device, input.WithRepeat(repeater))
		if err != nil {
			// Keyboard input still works.
			logger.Warn("Game-pad input disabled", "device", cfg.Input.Device, "error", err)
		} else {
			opts.Device = device
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, err := tui.Run(ctx, myScriptGui(cfg.Title, logger), opts)
	logger.Info("Results", "state", state.String())

	if err != nil && !errors.Is(err, scriptgui.ErrCancelled) {
		logger.Error("GUI failed", "error", err)
		return err
	}
	return nil
}
