package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wirepat/fileio"
	"github.com/katalvlaran/wirepat/pattern"
	"github.com/katalvlaran/wirepat/route"
	"github.com/katalvlaran/wirepat/sequence"
	"github.com/katalvlaran/wirepat/timing"
)

func (a *app) patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Count wire patterns across a net corpus and write Pattern,Count CSV",
		Args:  cobra.NoArgs,
		RunE:  a.runPatterns,
	}
	a.netFlags(cmd)
	cmd.Flags().StringVar(&a.out, "out", "", "output CSV (.gz/.zst compress; default stdout)")

	return cmd
}

func (a *app) sequencesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sequences",
		Short: "Extract leaf-to-leaf pattern sequences of every net",
		Args:  cobra.NoArgs,
		RunE:  a.runSequences,
	}
	a.netFlags(cmd)
	cmd.Flags().StringVar(&a.out, "out", "", "output JSON (.gz/.zst compress; default stdout)")
	cmd.Flags().StringVar(&a.sourcePolicy, "source-policy", "", "sequence source leaf: first_leaf or driver_pin")

	return cmd
}

func (a *app) annotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Label timing graph edges with wire patterns",
		Args:  cobra.NoArgs,
		RunE:  a.runAnnotate,
	}
	a.netFlags(cmd)
	cmd.Flags().StringVar(&a.timingGraph, "timing-graph", "", "design timing/wire graph dump")
	cmd.Flags().StringVar(&a.out, "out", "", "output JSON (.gz/.zst compress; default stdout)")

	return cmd
}

func (a *app) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Summarize a Pattern,Count CSV",
		Args:  cobra.NoArgs,
		RunE:  a.runCatalog,
	}
	cmd.Flags().StringVar(&a.in, "in", "", "pattern CSV written by the patterns command")
	cmd.Flags().IntVar(&a.top, "top", 10, "number of patterns to list (0 lists all)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func (a *app) encoder() (*pattern.Encoder, error) {
	return pattern.NewEncoder(pattern.WithEpsilon(a.cfg.Epsilon), pattern.WithObserver(a.reg))
}

func (a *app) runPatterns(cmd *cobra.Command, _ []string) error {
	enc, err := a.encoder()
	if err != nil {
		return err
	}
	err = a.eachNet(func(n *route.Net) error {
		for _, w := range n.Wires {
			enc.AddWire(w)
		}
		return nil
	})
	if err != nil {
		return err
	}

	cat := enc.Catalog()
	klog.Infof("%d wires, %d distinct patterns, fingerprint %s", cat.Total(), cat.Len(), cat.Fingerprint())

	return a.writeOutput(cmd, a.cfg.PatternsCSV, cat.WriteCSV)
}

func (a *app) runSequences(cmd *cobra.Command, _ []string) error {
	enc, err := a.encoder()
	if err != nil {
		return err
	}
	policy, err := sequence.PolicyByName(a.cfg.SourcePolicy)
	if err != nil {
		return err
	}
	x, err := sequence.NewExtractor(enc, sequence.WithSourcePolicy(policy), sequence.WithObserver(a.reg))
	if err != nil {
		return err
	}

	return a.writeOutput(cmd, a.cfg.SequencesJSON, func(w io.Writer) error {
		sw := sequence.NewWriter(w)
		err := a.eachNet(func(n *route.Net) error {
			seqs, err := x.Extract(n)
			if err != nil {
				return err
			}
			return sw.Write(seqs...)
		})
		if err != nil {
			return err
		}
		klog.Infof("%d sequences from %d wires", sw.Count(), enc.Catalog().Total())
		return sw.Close()
	})
}

func (a *app) runAnnotate(cmd *cobra.Command, _ []string) error {
	if a.cfg.TimingGraph == "" {
		return errors.New("annotate: --timing-graph is required")
	}
	p := timing.Parser{Observer: a.reg}
	g, found, err := p.ParseFile(a.cfg.TimingGraph)
	if err != nil {
		return err
	}
	if !found {
		klog.Warningf("timing graph %s does not exist, nothing to annotate", a.cfg.TimingGraph)
		return nil
	}

	idx := timing.NewWireIndex()
	err = a.eachNet(func(n *route.Net) error {
		idx.AddNet(n)
		return nil
	})
	if err != nil {
		return err
	}

	enc, err := a.encoder()
	if err != nil {
		return err
	}
	an, err := timing.NewAnnotator(enc, a.reg)
	if err != nil {
		return err
	}
	out, err := an.Annotate(g, idx)
	if err != nil {
		return err
	}

	return a.writeOutput(cmd, a.cfg.AnnotatedJSON, out.WriteJSON)
}

func (a *app) runCatalog(cmd *cobra.Command, _ []string) error {
	f, err := fileio.Open(a.in)
	if err != nil {
		return err
	}
	defer f.Close()

	cat, err := pattern.ReadCSV(f)
	if err != nil {
		return errors.Wrapf(err, "catalog: %s", a.in)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "RANK\tCOUNT\tSHARE\tPATTERN\n")
	for i, e := range cat.Sorted() {
		if a.top > 0 && i >= a.top {
			break
		}
		name := e.Name
		if name == "" {
			name = "(degenerate)"
		}
		share := 0.0
		if cat.Total() > 0 {
			share = 100 * float64(e.Count) / float64(cat.Total())
		}
		fmt.Fprintf(tw, "%d\t%d\t%.2f%%\t%s\n", i+1, e.Count, share, name)
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n%d wires, %d distinct patterns\nfingerprint %s\n",
		cat.Total(), cat.Len(), cat.Fingerprint())

	return err
}

// eachNet feeds every net of every discovered input file to fn. A file
// that cannot be opened or decoded is skipped as a whole; an error from fn
// aborts the run.
func (a *app) eachNet(fn func(*route.Net) error) error {
	files, err := fileio.Discover(a.cfg.NetsDir, a.cfg.Nets...)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		klog.Warningf("no net files under %s matching %v", a.cfg.NetsDir, a.cfg.Nets)
	}

	nets := 0
	for _, path := range files {
		batch, err := readNetFile(path)
		if err != nil {
			klog.Warningf("skipping %s: %v", path, err)
			a.reg.InputFileSkipped()
			continue
		}
		klog.V(2).Infof("%s: %d nets", path, len(batch))
		for _, n := range batch {
			if err = fn(n); err != nil {
				return errors.Wrapf(err, "%s: net %d", path, n.ID)
			}
		}
		nets += len(batch)
	}
	klog.Infof("read %d nets from %d files", nets, len(files))

	return nil
}

func readNetFile(path string) ([]*route.Net, error) {
	f, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return route.ReadNets(f)
}

// writeOutput runs write against path, or stdout when path is empty. A
// failed write or close removes the partial file.
func (a *app) writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := fileio.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		removePartial(path)
		return err
	}
	if err = f.Close(); err != nil {
		removePartial(path)
		return errors.Wrapf(err, "close %s", path)
	}
	klog.Infof("wrote %s", path)

	return nil
}

func removePartial(path string) {
	if err := os.Remove(path); err != nil && !fileio.IsNotExist(err) {
		klog.Warningf("leaving partial output %s: %v", path, err)
	}
}
