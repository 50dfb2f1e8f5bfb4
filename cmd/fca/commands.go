package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/gofca/core/indexset"
	"github.com/YuminosukeSato/gofca/datasets"
	"github.com/YuminosukeSato/gofca/fca"
	"github.com/YuminosukeSato/gofca/pkg/errors"
	"github.com/YuminosukeSato/gofca/pkg/log"
)

// app holds state shared by all commands.
type app struct {
	logLevel   string
	logFormat  string
	configPath string

	config *Config
	logger log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.Nop()}

	root := &cobra.Command{
		Use:   "fca",
		Short: "Formal Concept Analysis on binary object-attribute contexts",
		Long: `fca enumerates the formal concepts of a context with brute force and
with Ganter's Next-Closure algorithm, verifies that both agree and
renders the context, its concepts and the concept lattice.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "console", "log format: console, zerolog or json")
	flags.StringVar(&a.configPath, "config", "", "YAML file with default settings")

	root.AddCommand(
		newDatasetsCmd(a),
		newAnalyzeCmd(a),
		newClosureCmd(a),
		newLatticeCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.config = &Config{}
	if a.configPath != "" {
		cfg, err := loadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.config = cfg
	}
	overrideString(cmd, "log-level", &a.logLevel, a.config.LogLevel)
	overrideString(cmd, "log-format", &a.logFormat, a.config.LogFormat)

	level, err := log.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.logger, err = newLogger(cmd.ErrOrStderr(), a.logFormat, level)
	return err
}

func newLogger(w io.Writer, format string, level log.Level) (log.Logger, error) {
	switch strings.ToLower(format) {
	case "json":
		return log.SetupLoggerTo(w, level), nil
	case "zerolog":
		z := log.NewZerologLogger(w, level)
		log.SetLogger(z)
		log.InstallWarnings(z)
		return z, nil
	case "console":
		z := log.NewConsoleLogger(w, level)
		log.SetLogger(z)
		log.InstallWarnings(z)
		return z, nil
	default:
		return nil, errors.NewValidationError("log-format", "expected console, zerolog or json", format)
	}
}

// source selects the context a command works on.
type source struct {
	dataset string
	file    string
}

func (s *source) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.dataset, "dataset", "d", datasets.AnimalsName,
		"built-in dataset ("+strings.Join(datasets.Names(), ", ")+")")
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "YAML context file, overrides --dataset")
}

func (s *source) load(logger log.Logger) (*datasets.Dataset, error) {
	var (
		d   *datasets.Dataset
		err error
	)
	if s.file != "" {
		d, err = datasets.LoadFile(s.file)
	} else {
		d, err = datasets.Load(s.dataset)
	}
	if err != nil {
		fields := []any{log.OperationKey, log.OperationBuild, log.ErrAttrKey, err}
		if errors.Is(err, errors.ErrInvalidContext) {
			fields = append(fields,
				log.ErrorCodeKey, log.ErrorInvalidContext,
				log.SuggestionKey, "every incidence row needs one 0 or 1 per attribute",
			)
		}
		logger.Error("context rejected", fields...)
		return nil, err
	}
	logger.Debug("context loaded",
		log.OperationKey, log.OperationBuild,
		log.ContextNameKey, d.Name,
		log.ObjectsKey, d.Context.NumObjects(),
		log.AttributesKey, d.Context.NumAttributes(),
	)
	return d, nil
}

// parseSet resolves labels or numeric indices against labels.
func parseSet(args []string, lookup func(...string) (indexset.Set, error), check func(indexset.Set) error) (indexset.Set, error) {
	var byLabel []string
	var byIndex []int
	for _, arg := range args {
		if i, err := strconv.Atoi(arg); err == nil {
			byIndex = append(byIndex, i)
			continue
		}
		byLabel = append(byLabel, arg)
	}
	for _, i := range byIndex {
		if i < 0 {
			return indexset.Set{}, errors.NewValidationError("index", "must not be negative", i)
		}
	}

	set, err := lookup(byLabel...)
	if err != nil {
		return indexset.Set{}, err
	}
	set = set.Union(indexset.New(byIndex...))
	if err := check(set); err != nil {
		return indexset.Set{}, err
	}
	return set, nil
}

func newFCAOptions(a *app) []fca.Option {
	return []fca.Option{fca.WithLogger(a.logger)}
}
