// Package bench implements the benchmark file harness: it reads
// "<move-sequence> <expected-score>" lines, solves each position, and
// reports any mismatch against the expected score along with timing.
package bench

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jmayclin/c4solve/internal/c4"
)

// Mismatch describes a benchmark line whose solved score disagreed
// with the expected score.
type Mismatch struct {
	Line     int
	Sequence string
	Expected int
	Got      int
}

func (m Mismatch) String() string {
	return fmt.Sprintf("line %d: sequence %q solved to %d, expected %d", m.Line, m.Sequence, m.Got, m.Expected)
}

// Result summarizes a run over a single benchmark file.
type Result struct {
	Positions  int
	Mismatches []Mismatch
	Duration   time.Duration
	Nodes      uint64
}

// AverageNodesPerPosition returns Nodes/Positions, or 0 if Positions
// is 0.
func (r Result) AverageNodesPerPosition() uint64 {
	if r.Positions == 0 {
		return 0
	}
	return r.Nodes / uint64(r.Positions)
}

// AverageDuration returns Duration/Positions, or 0 if Positions is 0.
func (r Result) AverageDuration() time.Duration {
	if r.Positions == 0 {
		return 0
	}
	return r.Duration / time.Duration(r.Positions)
}

// Run solves every line of r against a fresh TranspositionTable (one
// table per benchmark file, reused across its lines — matching the
// original harness, which keeps one table per file and a fresh one
// per file, not per line).
func Run(r io.Reader) (Result, error) {
	var result Result
	tt := c4.NewTranspositionTable()
	searcher := c4.NewSearcher(tt)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	start := time.Now()

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sequence, expected, err := parseLine(line)
		if err != nil {
			return result, fmt.Errorf("line %d: %w", lineNum, err)
		}

		pos := c4.Construct(sequence)
		score, _ := searcher.Solve(pos)
		result.Nodes += searcher.Nodes()
		result.Positions++

		if score != expected {
			result.Mismatches = append(result.Mismatches, Mismatch{
				Line:     lineNum,
				Sequence: sequence,
				Expected: expected,
				Got:      score,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return result, err
	}

	result.Duration = time.Since(start)
	return result, nil
}

func parseLine(line string) (sequence string, expected int, err error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("expected \"<sequence> <score>\", got %q", line)
	}
	expected, err = strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("invalid expected score %q: %w", parts[1], err)
	}
	return parts[0], expected, nil
}
