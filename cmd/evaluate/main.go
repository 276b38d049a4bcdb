// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

// Command evaluate reports Recall@K of the recommender against a labeled
// set, and optionally writes a submission file for a set of test queries.
//
//	evaluate -labeled train.csv -k 10
//	evaluate -labeled train.csv -from-labeled -per-row
//	evaluate -labeled train.csv -queries test.csv -submission submission.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/tomtom215/skillmatch/internal/catalog"
	"github.com/tomtom215/skillmatch/internal/config"
	"github.com/tomtom215/skillmatch/internal/evaluate"
	"github.com/tomtom215/skillmatch/internal/logging"
	"github.com/tomtom215/skillmatch/internal/recommender"
)

var (
	labeledPath    = flag.String("labeled", "", "labeled CSV with Query and Assessment_url columns")
	k              = flag.Int("k", evaluate.DefaultK, "recall cutoff")
	perRow         = flag.Bool("per-row", false, "score every labeled row on its own")
	fromLabeled    = flag.Bool("from-labeled", false, "build the catalog from the labeled URLs instead of the configured catalog")
	queriesPath    = flag.String("queries", "", "CSV with a Query column for the submission")
	submissionPath = flag.String("submission", "", "write top-k predictions for -queries to this path")
	verbose        = flag.Bool("v", false, "print every query result")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging.LoggerConfig())

	if *labeledPath == "" && *queriesPath == "" {
		fmt.Fprintln(os.Stderr, "usage: evaluate -labeled train.csv [-k 10] [-per-row] [-from-labeled] [-queries test.csv -submission out.csv]")
		os.Exit(2)
	}

	ctx := context.Background()

	var pairs []evaluate.Labeled
	if *labeledPath != "" {
		pairs, err = loadLabeled(*labeledPath)
		if err != nil {
			logging.Fatal().Err(err).Str("path", *labeledPath).Msg("Failed to load labeled set")
		}
	}

	rec, err := buildRecommender(ctx, cfg, pairs)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommender")
	}

	if len(pairs) > 0 {
		report, err := evaluate.Run(ctx, rec, pairs, *k, evaluate.Options{PerRow: *perRow})
		if err != nil {
			logging.Fatal().Err(err).Msg("Evaluation failed")
		}
		printReport(report)
	}

	if *queriesPath != "" && *submissionPath != "" {
		if err := writeSubmission(ctx, rec); err != nil {
			logging.Fatal().Err(err).Str("path", *submissionPath).Msg("Failed to write submission")
		}
	}
}

func loadLabeled(path string) ([]evaluate.Labeled, error) {
	f, err := os.Open(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only
	return evaluate.LoadLabeled(f)
}

func buildRecommender(ctx context.Context, cfg *config.Config, pairs []evaluate.Labeled) (*recommender.Recommender, error) {
	if *fromLabeled {
		cat := evaluate.CatalogFromLabeled(pairs)
		return recommender.New(cat, cfg.Recommend.EngineConfig(), logging.Logger())
	}

	src, err := catalog.NewSource(ctx, cfg.Catalog.SourceConfig())
	if err != nil {
		return nil, err
	}
	cat, version, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	rec, err := recommender.New(cat, cfg.Recommend.EngineConfig(), logging.Logger())
	if err != nil {
		return nil, err
	}
	return rec.WithVersion(version), nil
}

func writeSubmission(ctx context.Context, rec *recommender.Recommender) error {
	in, err := os.Open(*queriesPath)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // read-only

	queries, err := evaluate.LoadQueries(in)
	if err != nil {
		return err
	}
	rows, err := evaluate.Submission(ctx, rec, queries, *k)
	if err != nil {
		return err
	}

	out, err := os.Create(*submissionPath)
	if err != nil {
		return err
	}
	if err := evaluate.WriteSubmission(out, rows); err != nil {
		out.Close() //nolint:errcheck,gosec // write error takes precedence
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Printf("Wrote %d predictions for %d queries to %s\n", len(rows), len(queries), *submissionPath)
	return nil
}

func printReport(report *evaluate.Report) {
	bold := color.New(color.Bold).SprintFunc()
	good := color.New(color.FgGreen).SprintfFunc()
	bad := color.New(color.FgRed).SprintfFunc()

	if *verbose {
		for _, r := range report.Results {
			score := good("%.4f", r.Recall)
			if r.Hits == 0 {
				score = bad("%.4f", r.Recall)
			}
			fmt.Printf("%s  %d/%d  %s\n", score, r.Hits, len(r.Relevant), truncate(r.Query, 70))
		}
		fmt.Println()
	}

	fmt.Printf("%s %s\n", bold(fmt.Sprintf("Mean Recall@%d:", report.K)),
		color.New(color.FgCyan, color.Bold).Sprintf("%.4f", report.MeanRecall))
	fmt.Printf("Evaluated %d queries\n", len(report.Results))
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > n {
		return string(r[:n-1]) + "…"
	}
	return s
}
