// Package main provides the wirepat CLI: pattern catalogs, net sequences
// and timing graph annotation over a directory of routed-net JSON files.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wirepat/config"
	"github.com/katalvlaran/wirepat/metrics"
)

var (
	klogFlags *flag.FlagSet
	klogOnce  sync.Once
)

func initLogging() {
	klogOnce.Do(func() {
		klogFlags = flag.NewFlagSet("klog", flag.ContinueOnError)
		klog.InitFlags(klogFlags)
		_ = klogFlags.Set("logtostderr", "true")
		klog.SetFormatter(&klog.FmtConstWidth{
			FileNameCharWidth: 16,
			UseColor:          false,
		})
	})
}

// app holds the flag values and run state shared by all commands.
type app struct {
	configPath  string
	metricsFile string
	verbosity   int

	netsDir      string
	globs        []string
	epsilon      int
	out          string
	sourcePolicy string
	timingGraph  string
	in           string
	top          int

	cfg *config.Config
	reg *metrics.Registry
}

func newRootCmd() *cobra.Command {
	initLogging()
	a := &app{}

	root := &cobra.Command{
		Use:   "wirepat",
		Short: "Routed-wire pattern extraction",
		Long: `wirepat canonicalizes routed wires into symbolic bend patterns, counts them,
extracts leaf-to-leaf pattern sequences per net and labels timing graph edges
with the patterns of the wires they cross.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile on exit")
	root.PersistentFlags().IntVarP(&a.verbosity, "verbosity", "v", 0, "log verbosity (0-5)")

	root.AddCommand(a.patternsCmd(), a.sequencesCmd(), a.annotateCmd(), a.catalogCmd())

	return root
}

// netFlags registers the input selection flags shared by net-reading commands.
func (a *app) netFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.netsDir, "nets-dir", "", "directory holding per-net JSON files")
	cmd.Flags().StringSliceVar(&a.globs, "glob", nil, "doublestar pattern under --nets-dir (repeatable)")
	cmd.Flags().IntVar(&a.epsilon, "epsilon", 0, "pattern length bucket width")
}

// setup resolves the configuration: defaults, then --config, then flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("nets-dir") {
		cfg.NetsDir = a.netsDir
	}
	if flags.Changed("glob") {
		cfg.Nets = a.globs
	}
	if flags.Changed("epsilon") {
		cfg.Epsilon = a.epsilon
	}
	if flags.Changed("source-policy") {
		cfg.SourcePolicy = a.sourcePolicy
	}
	if flags.Changed("timing-graph") {
		cfg.TimingGraph = a.timingGraph
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}
	if flags.Changed("verbosity") {
		cfg.LogVerbosity = a.verbosity
	}
	if flags.Changed("out") {
		switch cmd.Name() {
		case "patterns":
			cfg.PatternsCSV = a.out
		case "sequences":
			cfg.SequencesJSON = a.out
		case "annotate":
			cfg.AnnotatedJSON = a.out
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := klogFlags.Set("v", strconv.Itoa(cfg.LogVerbosity)); err != nil {
		return err
	}
	a.cfg = cfg
	a.reg = metrics.NewRegistry()
	klog.V(1).Infof("config: %+v", *cfg)

	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	defer klog.Flush()
	if a.cfg == nil || a.cfg.MetricsFile == "" {
		return nil
	}

	return a.reg.WriteTextfile(a.cfg.MetricsFile)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		klog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
