package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/e11jah/patricia"
	"github.com/e11jah/patricia/internal/config"
	"github.com/e11jah/patricia/internal/dict"
	"github.com/e11jah/patricia/internal/scanner"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var commonFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "config, c",
		Usage: "path to a YAML configuration file",
	},
	cli.StringFlag{
		Name:  "dict, d",
		Usage: "dictionary file (key[\\tvalue] per line, .gz accepted); overrides the config",
	},
	cli.BoolFlag{
		Name:  "debug",
		Usage: "enable debug logging",
	},
}

func newApp() *cli.App {
	ctl := cli.NewApp()
	ctl.Name = "patscan"
	ctl.Usage = "Scan text for dictionary keys using a PATRICIA trie"
	ctl.ErrWriter = os.Stderr

	ctl.Commands = []cli.Command{
		{
			Name:      "scan",
			Usage:     "print dictionary keys found in text files (stdin if none)",
			UsageText: "patscan scan [-c config] [-d dict] [--all] [--overlap] [file...]",
			Action:    scanText,
			Flags: append([]cli.Flag{
				cli.BoolFlag{
					Name:  "all, a",
					Usage: "report every key found at a position, not only the longest",
				},
				cli.BoolFlag{
					Name:  "overlap",
					Usage: "continue matching inside a found key",
				},
				cli.BoolFlag{
					Name:  "count",
					Usage: "print per-key totals instead of tokens",
				},
			}, commonFlags...),
		},
		{
			Name:      "prefix",
			Usage:     "list dictionary entries starting with each prefix",
			UsageText: "patscan prefix [-c config] [-d dict] prefix...",
			Action:    listPrefix,
			Flags:     commonFlags,
		},
	}
	return ctl
}

// setup loads the configuration, builds the logger and reads the dictionary
// shared by all commands. The logger is only returned when err is nil.
func setup(ctx *cli.Context) (config.Config, *zap.Logger, *patricia.Trie[string], error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, nil, nil, err
		}
	}
	if path := ctx.String("dict"); path != "" {
		cfg.Dictionary = path
	}

	if cfg.Dictionary == "" {
		return cfg, nil, nil, errors.New("no dictionary given, use --dict or the config file")
	}

	log, err := newLogger(ctx.Bool("debug"), cfg.LogLevel, ctx.App.ErrWriter)
	if err != nil {
		return cfg, nil, nil, err
	}
	d, err := dict.LoadFile(cfg.Dictionary, log)
	if err != nil {
		_ = log.Sync()
		return cfg, nil, nil, err
	}
	return cfg, log, d, nil
}

// newLogger builds a console logger writing to w.
func newLogger(debug bool, logLevel string, w io.Writer) (*zap.Logger, error) {
	var (
		level = zapcore.InfoLevel
		err   error
	)
	if len(logLevel) > 0 {
		level, err = zapcore.ParseLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("log setting: %w", err)
		}
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionEncoderConfig()
	cc.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cc), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core), nil
}

func scanText(ctx *cli.Context) error {
	cfg, log, d, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := scanner.Options{
		LongestOnly: cfg.Scan.LongestOnly && !ctx.Bool("all"),
		Overlap:     cfg.Scan.Overlap || ctx.Bool("overlap"),
	}

	files := []string(ctx.Args())
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		text, err := readInput(name, os.Stdin)
		if err != nil {
			return err
		}
		log.Debug("scanning", zap.String("input", name), zap.Int("bytes", len(text)))

		prefix := ""
		if len(files) > 1 {
			prefix = name + ":"
		}
		if ctx.Bool("count") {
			counts := scanner.Count(d, text, opts)
			for key := range d.Keys() {
				if n := counts[key]; n > 0 {
					fmt.Fprintf(ctx.App.Writer, "%s%s\t%d\n", prefix, key, n)
				}
			}
			continue
		}

		tokens := 0
		for tok := range scanner.Scan(d, text, opts) {
			fmt.Fprintf(ctx.App.Writer, "%s%d\t%s\t%s\n", prefix, tok.Offset, tok.Key, tok.Value)
			tokens++
		}
		log.Debug("scan done", zap.String("input", name), zap.Int("tokens", tokens))
	}
	return nil
}

func listPrefix(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return errors.New("no prefix given")
	}
	_, log, d, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	for _, prefix := range ctx.Args() {
		if !d.IsPrefix(prefix) {
			log.Info("no entries", zap.String("prefix", prefix))
			continue
		}
		for key, value := range d.WithPrefix(prefix) {
			fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", key, value)
		}
	}
	return nil
}

func readInput(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}
