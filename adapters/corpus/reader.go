package corpus

import (
	"bufio"
	"fmt"
	"os"

	"goeed/domain/core"
	"goeed/ports"
)

// FileReader loads line-aligned corpus files: one hypothesis file plus one or
// more reference files. Line i of every file belongs to sentence pair i, the
// standard layout of machine-translation evaluation sets.
type FileReader struct {
	hypothesisPath string
	referencePaths []string
}

// NewFileReader creates a corpus reader over line-aligned text files
func NewFileReader(hypothesisPath string, referencePaths ...string) *FileReader {
	return &FileReader{hypothesisPath: hypothesisPath, referencePaths: referencePaths}
}

var _ ports.CorpusSource = (*FileReader)(nil)

// Load reads all files and assembles index-aligned hypothesis/reference pairs
func (r *FileReader) Load() ([]string, [][]string, error) {
	if len(r.referencePaths) == 0 {
		return nil, nil, core.ErrEmptyReferences
	}

	hypotheses, err := readLines(r.hypothesisPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read hypotheses: %w", err)
	}

	references := make([][]string, len(hypotheses))
	for i := range references {
		references[i] = make([]string, 0, len(r.referencePaths))
	}

	for _, path := range r.referencePaths {
		lines, err := readLines(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read references: %w", err)
		}
		if len(lines) != len(hypotheses) {
			return nil, nil, fmt.Errorf("%w: %s has %d lines, hypotheses have %d",
				core.ErrCorpusMismatch, path, len(lines), len(hypotheses))
		}
		for i, line := range lines {
			references[i] = append(references[i], line)
		}
	}

	return hypotheses, references, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
