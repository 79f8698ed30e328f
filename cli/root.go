// Package cli implements the taglog command, a filter that replays
// leveled log lines from standard input through the taglog façade.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/silvermode/go-taglog/config"
	"github.com/silvermode/go-taglog/taglog"
)

var (
	configFile   string
	defaultLevel string
	colorMode    string
	outputFile   string
	tagLevels    []string
)

// Execute runs the root command, handling any errors that occur during execution.
func Execute(version string) {
	if err := newRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "taglog",
		Short:   "Filter leveled log lines by tag",
		Long: `taglog reads "LEVEL TAG message" lines from standard input and replays
them through a per-tag leveled filter. Lines above the ceiling for their
tag are dropped; the rest are re-emitted as formatted, timestamped log
lines. Lines that do not parse are forwarded at INFO under the "stdin"
tag.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "load levels and colors from CONFIG_FILE")
	rootCmd.Flags().StringVarP(&defaultLevel, "default-level", "l", "", "level for tags without an override")
	rootCmd.Flags().StringArrayVarP(&tagLevels, "level", "L", nil, "per-tag override as tag=LEVEL (repeatable)")
	rootCmd.Flags().StringVar(&colorMode, "color", "", "color mode: auto, always or never")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "append output to OUTPUT_FILE (default: stdout)")

	return rootCmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	sink := taglog.WriterSink(cmd.OutOrStdout())
	if outputFile != "" {
		f, err := os.OpenFile(outputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrap(err, "open output file")
		}
		defer f.Close()
		sink = taglog.WriterSink(f)
	}

	log := taglog.New(taglog.Config{Sink: sink})
	cfg.Apply(log)

	return replay(cmd.InOrStdin(), log)
}

// buildConfig resolves the effective configuration: the config file, if
// any, overridden by the individual flags.
func buildConfig() (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if defaultLevel != "" {
		lv, err := taglog.ParseLevel(defaultLevel)
		if err != nil {
			return nil, errors.Wrap(err, "--default-level")
		}
		cfg.DefaultLevel = lv
	}
	if colorMode != "" {
		mode, err := taglog.ParseColorMode(colorMode)
		if err != nil {
			return nil, errors.Wrap(err, "--color")
		}
		cfg.Colors = mode
	}
	for _, spec := range tagLevels {
		tag, name, ok := strings.Cut(spec, "=")
		if !ok || tag == "" {
			return nil, errors.Errorf("invalid --level %q: expected tag=LEVEL", spec)
		}
		lv, err := taglog.ParseLevel(name)
		if err != nil {
			return nil, errors.Wrapf(err, "--level %s", tag)
		}
		cfg.Tags[tag] = lv
	}
	return cfg, nil
}

// replay feeds each input line through log. Format: LEVEL TAG message.
func replay(r io.Reader, log *taglog.Logger) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		level, tag, msg, ok := splitLine(line)
		if !ok {
			log.Infof("stdin", "%s", line)
			continue
		}
		log.Writef(level, tag, "%s", msg)
	}
	return errors.Wrap(sc.Err(), "read input")
}

func splitLine(line string) (taglog.Level, string, string, bool) {
	fields := strings.SplitN(strings.TrimSpace(line), " ", 3)
	if len(fields) < 2 {
		return taglog.LevelNone, "", "", false
	}
	level, err := taglog.ParseLevel(fields[0])
	if err != nil {
		return taglog.LevelNone, "", "", false
	}
	msg := ""
	if len(fields) == 3 {
		msg = fields[2]
	}
	return level, fields[1], msg, true
}
