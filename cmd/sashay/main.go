package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/sashay/internal/app"
	"github.com/sadopc/sashay/internal/config"
	"github.com/sadopc/sashay/internal/log"
	"github.com/sadopc/sashay/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "solve":
			solveCmd(os.Args[2:])
			return
		case "drag":
			dragCmd(os.Args[2:])
			return
		case "validate":
			validateCmd(os.Args[2:])
			return
		case "themes":
			themesCmd(os.Stdout)
			return
		case "version":
			fmt.Printf("sashay %s (%s) built %s\n", version.Version, version.Commit, version.Date)
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `sashay - resizable split panes for the terminal

Usage:
  sashay [flags]                    Launch the split-pane TUI
  sashay <command> [args] [flags]   Run a subcommand

Commands:
  solve     Fit pane sizes to a container size
  drag      Apply a sash drag to pane sizes
  validate  Validate layout or config YAML files
  themes    List available themes
  version   Print version information
  help      Show this help message

TUI Flags:
  --config <path>  Config file (default ~/.config/sashay/config.yaml)
  --layout <path>  Layout file replacing the configured layout
  --theme <name>   Theme name
  --log <path>     Write logs to a file
  --debug          Enable debug logging
  --version        Print version and exit

Run 'sashay <command> --help' for more information about a command.
`)
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	configFlag := flag.String("config", "", "Path to a config file")
	layoutFlag := flag.String("layout", "", "Path to a layout file")
	themeFlag := flag.String("theme", "", "Theme name")
	logFlag := flag.String("log", "", "Write logs to this file")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = printHelp
	flag.Parse()

	if *versionFlag {
		fmt.Printf("sashay %s (%s) built %s\n", version.Version, version.Commit, version.Date)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFlag, *layoutFlag)
	if err != nil {
		log.UserError("Error: " + err.Error())
		os.Exit(1)
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}
	if *logFlag != "" {
		cfg.LogFile = *logFlag
	}
	cfg.Debug = cfg.Debug || *debugFlag

	closeLog, err := log.Setup(cfg.LogFile, cfg.Debug, log.ModeTUI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	model := app.New(cfg)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		log.SetMode(log.ModeHeadless)
		log.UserError("Error: " + err.Error())
		os.Exit(1)
	}
}

// loadConfig reads the config file and an optional layout override. An
// explicit config path must exist; the default one falls back to defaults.
func loadConfig(configPath, layoutPath string) (config.Config, error) {
	cfg := config.Load()
	if configPath != "" {
		c, err := config.LoadFile(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}
	if layoutPath != "" {
		n, err := config.LoadLayout(layoutPath)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", layoutPath, err)
		}
		cfg.Layout = n
	}
	return cfg, nil
}
