package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/CyranoB/slop-detector/internal/assets"
	"github.com/CyranoB/slop-detector/internal/config"
	"github.com/CyranoB/slop-detector/internal/engine"
	"github.com/CyranoB/slop-detector/internal/log"
	"github.com/CyranoB/slop-detector/internal/output"
	"github.com/CyranoB/slop-detector/internal/postag"
	"github.com/CyranoB/slop-detector/internal/score"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: slopdetect <command> [flags] [files...]

Commands:
  score     Score text for AI-pattern-heavy writing (default when given files)
  assets    Print the effective lexicon and benchmark ranges
  init      Generate a default .slopdetect.yml config file
  version   Print version and exit
  help      Show this help

Run 'slopdetect <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		// No arguments: score stdin if piped, otherwise print usage.
		if isStdinPipe() {
			return runScore(nil)
		}
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]
	switch first {
	case "--help", "-h", "help":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	case "score":
		return runScore(os.Args[2:])
	case "assets":
		return runAssets(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	}

	// A path or flag as the first argument means "score".
	if !strings.HasPrefix(first, "-") {
		return runScore(os.Args[1:])
	}

	fmt.Fprintf(os.Stderr, "slopdetect: unknown command %q\n\n%s", first, usageText)
	return 2
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("slopdetect %s\n", version)
}

// runScore implements the "score" subcommand.
func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	var (
		configPath string
		format     string
		assetsPath string
		minWords   int
		noColor    bool
		noTagging  bool
		lenient    bool
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&format, "format", "f", "", "Output format: text, json")
	fs.StringVar(&assetsPath, "assets", "", "Override lexicon/benchmark asset file")
	fs.IntVar(&minWords, "min-words", -1, "Skip inputs with fewer words")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVar(&noTagging, "no-tagging", false, "Disable the part-of-speech contrast pass")
	fs.BoolVar(&lenient, "lenient", false, "Report a broken tagger as n/a instead of failing")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Print diagnostics and per-file evidence")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: slopdetect score [flags] [files...]\n\n"+
			"Score files for AI-pattern-heavy writing (0-100).\n\n"+
			"Files can be paths or directories (walked recursively for *.md, *.markdown, *.txt).\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, code := loadConfig(configPath)
	if code != 0 {
		return code
	}
	if format != "" {
		cfg.Format = format
	}
	if minWords >= 0 {
		cfg.MinWords = minWords
	}
	if assetsPath != "" {
		cfg.Assets = assetsPath
	}
	if noTagging {
		cfg.Contrast.DisableTagging = true
	}
	if lenient {
		cfg.Contrast.ContinueOnError = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "slopdetect: %v\n", err)
		return 2
	}

	logger := &log.Logger{Enabled: verbose, W: os.Stderr}
	runner, code := buildRunner(cfg, logger)
	if code != 0 {
		return code
	}

	files, err := expandPaths(fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "slopdetect: %v\n", err)
		return 1
	}

	var res *engine.Result
	if len(files) == 0 {
		if !isStdinPipe() {
			fs.Usage()
			return 2
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "slopdetect: reading stdin: %v\n", err)
			return 1
		}
		rep, err := runner.ScoreText("stdin", string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "slopdetect: %v\n", err)
			return 1
		}
		res = &engine.Result{Reports: []engine.Report{rep}}
	} else {
		res = runner.Run(files)
	}

	formatter := pickFormatter(cfg.Format, !noColor && isTerminal(os.Stdout), verbose)
	if err := formatter.Format(os.Stdout, res.Reports); err != nil {
		fmt.Fprintf(os.Stderr, "slopdetect: writing output: %v\n", err)
		return 1
	}

	for _, err := range res.Errors {
		fmt.Fprintf(os.Stderr, "slopdetect: %v\n", err)
	}
	if len(res.Errors) > 0 {
		return 1
	}
	return 0
}

func loadConfig(configPath string) (*config.Config, int) {
	if configPath == "" {
		found, err := config.Discover(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "slopdetect: %v\n", err)
			return nil, 1
		}
		configPath = found
	}
	if configPath == "" {
		return config.Defaults(), 0
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slopdetect: %v\n", err)
		return nil, 1
	}
	return cfg, 0
}

func buildRunner(cfg *config.Config, logger *log.Logger) (*engine.Runner, int) {
	var (
		a   *assets.Assets
		err error
	)
	if cfg.Assets != "" {
		a, err = assets.LoadFile(cfg.Assets)
	} else {
		a, err = assets.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "slopdetect: loading assets: %v\n", err)
		return nil, 1
	}

	var tagger postag.Tagger
	if !cfg.Contrast.DisableTagging {
		tagger = postag.ProseTagger{}
	}

	scorer := score.NewScorer(a, tagger, logger)
	scorer.ContinueOnTaggerFailure = cfg.Contrast.ContinueOnError

	return &engine.Runner{
		Config: cfg,
		Scorer: scorer,
		Log:    logger,
	}, 0
}

// scorableExtensions are the file types picked up when walking a
// directory argument.
var scorableExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// expandPaths resolves directory arguments into their contained text
// files; plain file arguments pass through untouched.
func expandPaths(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if scorableExtensions[strings.ToLower(filepath.Ext(path))] {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func pickFormatter(format string, color, verbose bool) output.Formatter {
	if format == "json" {
		return &output.JSONFormatter{}
	}
	return &output.TextFormatter{Color: color, Verbose: verbose}
}

func isStdinPipe() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// runAssets implements the "assets" subcommand: summarize the effective
// lexicon and benchmark ranges.
func runAssets(args []string) int {
	fs := flag.NewFlagSet("assets", flag.ContinueOnError)
	var assetsPath string
	fs.StringVar(&assetsPath, "assets", "", "Override lexicon/benchmark asset file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: slopdetect assets [flags]\n\n"+
			"Print the effective lexicon sizes and benchmark ranges.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var (
		a   *assets.Assets
		err error
	)
	if assetsPath != "" {
		a, err = assets.LoadFile(assetsPath)
	} else {
		a, err = assets.Default()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "slopdetect: loading assets: %v\n", err)
		return 1
	}

	fmt.Printf("words:    %d\n", len(a.Words))
	fmt.Printf("trigrams: %d\n", len(a.Trigrams))
	for _, metric := range []string{assets.MetricWords, assets.MetricTrigrams, assets.MetricContrast} {
		r := a.Ranges[metric]
		fmt.Printf("%s: [%g, %g]\n", metric, r.Min, r.Max)
	}
	return 0
}

const defaultConfigText = `# slopdetect configuration
format: text
min-words: 0
ignore: []

# contrast:
#   disable-tagging: false
#   continue-on-error: false
`

// runInit implements the "init" subcommand: write a default config file.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	var force bool
	fs.BoolVar(&force, "force", false, "Overwrite an existing config file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: slopdetect init [flags]\n\n"+
			"Generate a default .slopdetect.yml in the current directory.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	const path = ".slopdetect.yml"
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stderr, "slopdetect: %s already exists (use --force to overwrite)\n", path)
			return 1
		}
	}
	if err := os.WriteFile(path, []byte(defaultConfigText), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "slopdetect: %v\n", err)
		return 1
	}
	fmt.Printf("wrote %s\n", path)
	return 0
}
