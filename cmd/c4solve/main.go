// c4solve is the command-line driver for the Connect Four solver: it
// solves a single move sequence, or runs a benchmark file of
// "<sequence> <expected-score>" lines and reports any mismatches.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmayclin/c4solve/internal/bench"
	"github.com/jmayclin/c4solve/internal/c4"
	"github.com/jmayclin/c4solve/internal/store"
)

func main() {
	sequence := flag.String("sequence", "", "move sequence to solve, e.g. 4455 (1-indexed columns)")
	benchFile := flag.String("bench", "", "path to a benchmark file of \"<sequence> <score>\" lines")
	dataDir := flag.String("datadir", "", "directory for the persisted solve cache (default: platform data dir)")
	noCache := flag.Bool("no-cache", false, "skip the persisted solve cache")
	cpuProfile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

	if *cpuProfile != "" {
		stop, err := startCPUProfile(*cpuProfile)
		if err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer stop()
	}

	switch {
	case *benchFile != "":
		runBench(*benchFile, *dataDir, *noCache)
	case *sequence != "":
		runSolve(*sequence, *dataDir, *noCache)
	default:
		fmt.Fprintln(os.Stderr, "usage: c4solve -sequence <moves> | -bench <file>")
		os.Exit(2)
	}
}

// openStore opens the persisted cache at dataDir (or the platform
// default data dir if empty), logging and returning nil rather than
// failing the caller if the cache is unavailable.
func openStore(dataDir string, noCache bool) *store.Store {
	if noCache {
		return nil
	}

	dir := dataDir
	if dir == "" {
		var err error
		dir, err = store.DatabaseDir()
		if err != nil {
			log.Printf("[c4solve] cache unavailable, continuing without it: %v", err)
			return nil
		}
	}

	s, err := store.Open(dir)
	if err != nil {
		log.Printf("[c4solve] cache unavailable, continuing without it: %v", err)
		return nil
	}
	return s
}

func runSolve(sequence, dataDir string, noCache bool) {
	pos := c4.Construct(sequence)

	s := openStore(dataDir, noCache)
	if s != nil {
		defer s.Close()
	}

	if s != nil {
		if rec, found, err := s.LoadSolve(pos.Hash()); err == nil && found {
			log.Printf("[c4solve] cache hit for hash %d", pos.Hash())
			printResult(pos, rec.Score, rec.Column)
			return
		}
	}

	tt := c4.NewTranspositionTable()
	start := time.Now()
	score, column := c4.Solve(pos, tt)
	elapsed := time.Since(start)

	stores, probes, hits := tt.Stats()
	log.Printf("[c4solve] solved in %s (tt stores=%d probes=%d hits=%d)", elapsed, stores, probes, hits)

	if s != nil {
		if err := s.SaveSolve(pos.Hash(), store.SolveRecord{Score: score, Column: column}); err != nil {
			log.Printf("[c4solve] failed to persist solve result: %v", err)
		}
	}

	printResult(pos, score, column)
}

func printResult(pos c4.Position, score, column int) {
	fmt.Print(pos.Render())
	fmt.Printf("score=%d column=%d (1-indexed: %d)\n", score, column, column+1)
}

func runBench(path, dataDir string, noCache bool) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("[c4solve] could not open benchmark file: %v", err)
	}
	defer f.Close()

	start := time.Now()
	result, err := bench.Run(f)
	if err != nil {
		log.Fatalf("[c4solve] benchmark run failed: %v", err)
	}
	elapsed := time.Since(start)

	log.Printf("[c4solve] %s: %d positions, %d mismatches, %s (%s/position, avg %d nodes/position)",
		path, result.Positions, len(result.Mismatches), elapsed, result.AverageDuration(), result.AverageNodesPerPosition())

	if s := openStore(dataDir, noCache); s != nil {
		defer s.Close()
		run := store.RunRecord{
			File:        path,
			Positions:   result.Positions,
			Mismatches:  len(result.Mismatches),
			Duration:    elapsed,
			AverageNode: result.AverageNodesPerPosition(),
		}
		if err := s.SaveRunHistory(run); err != nil {
			log.Printf("[c4solve] failed to persist run history: %v", err)
		}
	}

	for _, m := range result.Mismatches {
		fmt.Println(m.String())
	}

	if len(result.Mismatches) > 0 {
		os.Exit(1)
	}
}
