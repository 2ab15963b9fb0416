// Package report renders estimator results as a text summary or CSV rows.
package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/percolation/stats"
)

// TrialRecord is one CSV row: the trial index and its threshold sample.
type TrialRecord struct {
	Trial     int     `csv:"trial"`
	N         int     `csv:"n"`
	Threshold float64 `csv:"threshold"`
	Clusters  int     `csv:"clusters"`
}

// WriteSummary prints mean, stddev and the 95% confidence interval in
// fixed-width columns:
//
//	mean                     = 0.592620
//	stddev                   = 0.017540
//	95% confidence interval  = 0.589182         0.596058
func WriteSummary(w io.Writer, res *stats.Result) error {
	if _, err := fmt.Fprintf(w, "%-24s = %-17f\n", "mean", res.Mean); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-24s = %-17f\n", "stddev", res.StdDev); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%-24s = %-17f%-17f\n", "95% confidence interval", res.ConfidenceLo, res.ConfidenceHi)

	return err
}

// Records converts res into CSV rows in trial order.
func Records(res *stats.Result) []TrialRecord {
	out := make([]TrialRecord, len(res.Thresholds))
	for i, p := range res.Thresholds {
		rec := TrialRecord{Trial: i, N: res.N, Threshold: p}
		if i < len(res.Clusters) {
			rec.Clusters = res.Clusters[i]
		}
		out[i] = rec
	}

	return out
}

// WriteTrialsCSV writes a header and one row per trial.
func WriteTrialsCSV(w io.Writer, res *stats.Result) error {
	if err := gocsv.Marshal(Records(res), w); err != nil {
		return fmt.Errorf("writing trials csv: %w", err)
	}

	return nil
}
