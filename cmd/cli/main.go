package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goeed/adapters/corpus"
	"goeed/adapters/report"
	"goeed/app"
	"goeed/domain/eed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "goeed",
		Short: "Extended edit distance evaluation for machine translation output",
	}

	rootCmd.AddCommand(newScoreCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newScoreCmd() *cobra.Command {
	var (
		hypPath     string
		refPaths    []string
		language    string
		alpha       float64
		rho         float64
		deletion    float64
		insertion   float64
		workers     int
		perSentence bool
		xlsxPath    string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a line-aligned corpus and print the corpus-level EED",
		Long: `Score a hypothesis file against one or more reference files.

All files must be line-aligned: line i of every reference file is a reference
for line i of the hypothesis file.

Example: goeed score --hyp hyp.txt --ref ref0.txt --ref ref1.txt --per-sentence`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := eed.ParseLanguage(language)
			if err != nil {
				return err
			}

			hyps, refs, err := corpus.NewFileReader(hypPath, refPaths...).Load()
			if err != nil {
				return err
			}

			service := app.NewEvalService(nil, workers)
			evaluation, err := service.Evaluate(cmd.Context(), app.EvalRequest{
				Language:         lang,
				Params:           eed.Params{Alpha: alpha, Rho: rho, Deletion: deletion, Insertion: insertion},
				Hypotheses:       hyps,
				References:       refs,
				TrackPerSentence: perSentence || xlsxPath != "",
			})
			if err != nil {
				return err
			}

			fmt.Printf("sentences: %d\n", evaluation.Sentences)
			fmt.Printf("corpus EED: %.6f\n", evaluation.CorpusScore)
			if s := evaluation.Summary; s != nil {
				fmt.Printf("mean %.6f  median %.6f  stddev %.6f  q25 %.6f  q75 %.6f\n",
					s.Mean, s.Median, s.StdDev, s.Q25, s.Q75)
			}
			if perSentence {
				for i, score := range evaluation.SentenceScores {
					fmt.Printf("%6d  %.6f\n", i+1, score)
				}
			}
			if xlsxPath != "" {
				if err := report.WriteExcel(evaluation, xlsxPath); err != nil {
					return err
				}
				fmt.Printf("report written to %s\n", xlsxPath)
			}
			return nil
		},
	}

	defaults := eed.DefaultParams()
	cmd.Flags().StringVar(&hypPath, "hyp", "", "hypothesis file, one sentence per line")
	cmd.Flags().StringArrayVar(&refPaths, "ref", nil, "reference file, repeatable for multi-reference corpora")
	cmd.Flags().StringVar(&language, "lang", "en", "language policy (en or ja)")
	cmd.Flags().Float64Var(&alpha, "alpha", defaults.Alpha, "jump penalty")
	cmd.Flags().Float64Var(&rho, "rho", defaults.Rho, "coverage cost per repeated visit")
	cmd.Flags().Float64Var(&deletion, "deletion", defaults.Deletion, "deletion cost")
	cmd.Flags().Float64Var(&insertion, "insertion", defaults.Insertion, "insertion/substitution cost")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = one per CPU)")
	cmd.Flags().BoolVar(&perSentence, "per-sentence", false, "print per-sentence scores")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write an xlsx report to this path")
	_ = cmd.MarkFlagRequired("hyp")
	_ = cmd.MarkFlagRequired("ref")

	return cmd
}
