package report

import (
	"fmt"

	"goeed/domain/run"

	"github.com/xuri/excelize/v2"
)

const scoresSheet = "Scores"

// WriteExcel exports an evaluation run to an xlsx workbook: a summary block
// followed by the per-sentence scores, one row each.
func WriteExcel(evaluation *run.Evaluation, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet, err := f.NewSheet(scoresSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(sheet)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Run ID", evaluation.ID.String()},
		{"Language", string(evaluation.Language)},
		{"Sentences", evaluation.Sentences},
		{"Corpus score", evaluation.CorpusScore},
		{"Created at", evaluation.CreatedAt.String()},
	}
	if s := evaluation.Summary; s != nil {
		rows = append(rows,
			[]interface{}{"Mean", s.Mean},
			[]interface{}{"Median", s.Median},
			[]interface{}{"Std dev", s.StdDev},
			[]interface{}{"Q25", s.Q25},
			[]interface{}{"Q75", s.Q75},
		)
	}
	rows = append(rows, []interface{}{}, []interface{}{"Sentence", "Score"})
	for i, score := range evaluation.SentenceScores {
		rows = append(rows, []interface{}{i + 1, score})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(scoresSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}
	return nil
}
