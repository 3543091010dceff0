package main

import (
	"fmt"

	"github.com/bastiangx/wordgrid/internal/logger"
	"github.com/bastiangx/wordgrid/internal/utils"
	"github.com/bastiangx/wordgrid/pkg/config"
	"github.com/bastiangx/wordgrid/pkg/dictionary"
	"github.com/bastiangx/wordgrid/pkg/grid"
	"github.com/bastiangx/wordgrid/pkg/search"
	"github.com/bastiangx/wordgrid/pkg/words"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// app is what every subcommand runs against, built once per invocation.
type app struct {
	config     *config.Config
	configPath string
	corpus     *words.Corpus
	grid       *grid.Grid
}

type rootOptions struct {
	configPath string
	corpus     string
	debug      bool
	limit      int
	seed       int64
	dryRun     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	a := &app{}

	root := &cobra.Command{
		Use:           AppName,
		Short:         "Pick a letter, get a few words, look one up",
		Long:          "WordGrid shows the letters A to Z and samples dictionary words for the one you pick.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Setup(opts.debug)
			if cmd.Name() == "version" {
				return nil
			}
			return a.init(cmd, opts)
		},
	}

	opts.bind(root)

	root.AddCommand(
		newVersionCmd(),
		newLettersCmd(a),
		newWordsCmd(a),
		newOpenCmd(a),
		newCLICmd(a),
		newTUICmd(a),
		newServeCmd(a),
		newHTTPCmd(a),
		newExportCmd(a),
	)
	return root
}

func (o *rootOptions) bind(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "Path to config.toml (default: user config dir)")
	flags.StringVar(&o.corpus, "corpus", "", "Word list to use instead of the bundled one (.txt, .xml, .msgpack)")
	flags.BoolVarP(&o.debug, "debug", "d", false, "Toggle debug mode")
	flags.IntVar(&o.limit, "limit", words.DefaultLimit, "Number of words shown per letter")
	flags.Int64Var(&o.seed, "seed", 0, "Fix the random seed (0 picks one per run)")
	flags.BoolVar(&o.dryRun, "dry-run", false, "Print search URLs instead of opening a browser")
}

// init loads config, applies flag overrides and wires the grid.
func (a *app) init(cmd *cobra.Command, opts *rootOptions) error {
	cfg, path, err := config.LoadConfigWithPriority(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(path))

	flags := cmd.Flags()
	if flags.Changed("corpus") {
		cfg.Words.Corpus = opts.corpus
	}
	if flags.Changed("limit") {
		if opts.limit < 0 || opts.limit > cfg.Server.MaxLimit {
			return fmt.Errorf("--limit must be between 0 and %d", cfg.Server.MaxLimit)
		}
		cfg.Words.Limit = opts.limit
	}
	if flags.Changed("seed") {
		cfg.Words.Seed = opts.seed
	}
	if flags.Changed("dry-run") {
		cfg.Search.DryRun = opts.dryRun
	}

	corpusPath := cfg.Words.Corpus
	if corpusPath != "" {
		if resolver, err := utils.NewPathResolver(); err == nil {
			corpusPath = resolver.ResolveCorpus(corpusPath)
		}
	}
	list, err := dictionary.LoadOrDefault(corpusPath)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	if len(list) == 0 {
		log.Warn("Corpus is empty, every letter will show no words")
	}

	a.config = cfg
	a.configPath = path
	a.corpus = words.NewCorpus(list)
	a.grid = grid.New(a.corpus, newSelector(cfg), search.NewSink(cfg.Search.Prefix, newOpener(cfg)))
	log.Debug("Grid ready", "words", a.corpus.Len(), "limit", cfg.Words.Limit, "dryRun", cfg.Search.DryRun)
	return nil
}

func newSelector(cfg *config.Config) *words.Selector {
	opts := []words.Option{words.WithLimit(cfg.Words.Limit)}
	if cfg.Words.Seed != 0 {
		opts = append(opts, words.WithSeed(cfg.Words.Seed))
	}
	return words.NewSelector(opts...)
}

func newOpener(cfg *config.Config) search.Opener {
	if cfg.Search.DryRun {
		return &search.Recorder{}
	}
	return search.SystemOpener{}
}
