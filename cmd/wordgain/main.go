/*
Package main implements the wordgain solver server and CLI application.

Wordgain narrows a dictionary of five-letter words to the candidates
consistent with observed guess feedback, then ranks next guesses by the
Shannon entropy of the feedback distribution each would induce over the
surviving candidates. Suggestions print ascending by entropy: the best
guess is the last line.

# Usage

Start the msgpack IPC server over stdin/stdout:

	wordgain -data data/word_freqs.txt

Run an interactive session instead:

	wordgain -c -limit 20

Compile a text corpus into a msgpack snapshot for faster startup:

	wordgain -data data/word_freqs.txt -compile data/word_freqs.bin

The text corpus has one word per line followed by one or more frequency
samples; the per-word frequency is the mean of the trailing sample window
(5 by default, -window to change).

# Configuration

Runtime configuration lives in a TOML file, created with defaults on
first run:

	[solver]
	suggestion_limit = 0

	[dict]
	path = "data/word_freqs.txt"
	sample_window = 5

	[curve]
	a = -19970122538.988
	b = 41168735.495139
	c = -10.0

	[cli]
	default_limit = 20
	hint_limit = 5

The [curve] section holds the fitted coefficients mapping corpus
frequency to candidate plausibility; override only to re-tune against a
different corpus.

# IPC Protocol

The server reads msgpack solve requests from stdin and writes responses
to stdout. Each request carries the full observation history:

	{"id": "req1", "h": [{"g": "tares", "m": "bybyb"}], "l": 20}

See the server package for message details.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tobrh/wordgain/internal/cli"
	"github.com/tobrh/wordgain/pkg/config"
	"github.com/tobrh/wordgain/pkg/dictionary"
	"github.com/tobrh/wordgain/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "wordgain"
	gh      = "https://github.com/tobrh/wordgain"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and the chosen front end together.
// It holds no solver logic of its own.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Dictionary file (.txt corpus or .bin snapshot; default from config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI instead of the IPC server")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to show (0 for all)")
	window := flag.Int("window", defaults.Dict.SampleWindow, "Trailing frequency samples averaged per word")
	compilePath := flag.String("compile", "", "Compile the loaded dictionary to a msgpack snapshot at this path and exit")
	configPath := flag.String("config", "", "Custom config file path")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if activePath != "" {
		log.Debugf("Using config file: (%s)", activePath)
	}

	path := appConfig.Dict.Path
	if *dataPath != "" {
		path = *dataPath
	}
	sampleWindow := appConfig.Dict.SampleWindow
	if *window != defaults.Dict.SampleWindow {
		sampleWindow = *window
	}

	log.Debugf("Loading dictionary: path=(%s) window=[%d]", path, sampleWindow)
	dict, err := dictionary.LoadFile(path, sampleWindow)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	log.Debugf("Dictionary ready: %d entries", dict.Len())

	if *compilePath != "" {
		if err := dictionary.SaveCompiled(dict, *compilePath); err != nil {
			log.Fatalf("Failed to compile dictionary: %v", err)
		}
		log.Infof("Compiled %d entries to %s", dict.Len(), *compilePath)
		return
	}

	curve := appConfig.SolverCurve()

	if *cliMode {
		handler := cli.NewInputHandler(dict, curve, *limit, appConfig.CLI.HintLimit)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(dict, curve, appConfig.Solver.SuggestionLimit)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// showVersionInfo displays some basic info about the build.
func showVersionInfo() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordgain ] entropy-ranking word puzzle solver")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
