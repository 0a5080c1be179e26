// Command gocausal runs both causality estimators over a pair of columns
// from a CSV file and reports the results.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gocausal/causality"
	"gocausal/timeseries"
)

var log = logrus.New()

type options struct {
	input    string
	source   string
	target   string
	order    int
	pValue   float64
	maxDelay int
	bins     int
	output   string
}

func main() {
	opts := &options{}

	root := &cobra.Command{
		Use:   "gocausal",
		Short: "Estimate directional causal influence between two time series",
		Long: `gocausal loads two columns from a CSV file and estimates the causal
influence between them in both directions, using Granger causality with an
asymptotic chi-square significance threshold and a time-delayed mutual
information sweep.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	root.Flags().StringVarP(&opts.input, "input", "i", "", "input CSV file with a header row (required)")
	root.Flags().StringVar(&opts.source, "source", "", "column name of the candidate cause (required)")
	root.Flags().StringVar(&opts.target, "target", "", "column name of the candidate effect (required)")
	root.Flags().IntVar(&opts.order, "order", 10, "number of regression lags")
	root.Flags().Float64Var(&opts.pValue, "pvalue", 0.001, "significance level for the Granger test")
	root.Flags().IntVar(&opts.maxDelay, "max-delay", 20, "sweep delays from -max-delay to +max-delay")
	root.Flags().IntVar(&opts.bins, "bins", 0, "histogram bins per axis (0 = automatic)")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "write the TDMI curve to this CSV file")

	for _, flag := range []string{"input", "source", "target"} {
		if err := root.MarkFlagRequired(flag); err != nil {
			log.Fatal(err)
		}
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options) error {
	table, err := timeseries.LoadCSV(opts.input)
	if err != nil {
		return err
	}

	src, err := table.Series(opts.source)
	if err != nil {
		return err
	}
	tgt, err := table.Series(opts.target)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"input":   opts.input,
		"source":  src.Name,
		"target":  tgt.Name,
		"samples": src.Len(),
	}).Info("loaded series")

	for _, s := range []*timeseries.Series{src, tgt} {
		summary, err := s.Describe()
		if err != nil {
			return fmt.Errorf("describe %s: %w", s.Name, err)
		}
		log.WithFields(logrus.Fields{
			"series": s.Name,
			"mean":   summary.Mean,
			"std":    summary.Std,
			"min":    summary.Min,
			"max":    summary.Max,
		}).Debug("series statistics")
	}

	threshold, err := causality.SignificanceThreshold(opts.pValue, opts.order, src.Len())
	if err != nil {
		return err
	}

	// Granger causality in both directions, against the shared threshold.
	for _, dir := range []struct {
		label string
		x, y  *timeseries.Series
	}{
		{label: fmt.Sprintf("%s -> %s", src.Name, tgt.Name), x: tgt, y: src},
		{label: fmt.Sprintf("%s -> %s", tgt.Name, src.Name), x: src, y: tgt},
	} {
		gc, err := causality.GrangerCausality(dir.x.Values, dir.y.Values, opts.order)
		if err != nil {
			return fmt.Errorf("granger %s: %w", dir.label, err)
		}
		log.WithFields(logrus.Fields{
			"direction":   dir.label,
			"gc":          gc,
			"threshold":   threshold,
			"order":       opts.order,
			"significant": gc > threshold,
		}).Info("granger causality")
	}

	delays := make([]int, 0, 2*opts.maxDelay+1)
	for d := -opts.maxDelay; d <= opts.maxDelay; d++ {
		delays = append(delays, d)
	}

	curve, err := causality.TimeDelayedMutualInformation(src.Values, tgt.Values, delays, opts.bins)
	if err != nil {
		return fmt.Errorf("tdmi sweep: %w", err)
	}

	peakIdx := 0
	for i, v := range curve {
		if v > curve[peakIdx] {
			peakIdx = i
		}
	}
	log.WithFields(logrus.Fields{
		"peak_delay": delays[peakIdx],
		"peak_mi":    curve[peakIdx],
		"delays":     len(delays),
	}).Info("tdmi sweep complete")

	if opts.output != "" {
		if err := writeCurveCSV(opts.output, delays, curve); err != nil {
			return err
		}
		log.WithField("output", opts.output).Info("wrote TDMI curve")
	}
	return nil
}

// writeCurveCSV writes the (delay, MI) pairs with the columns: Delay, MI.
func writeCurveCSV(path string, delays []int, curve []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Delay", "MI"}); err != nil {
		return err
	}
	for i, d := range delays {
		record := []string{
			strconv.Itoa(d),
			fmt.Sprintf("%f", curve[i]),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}
