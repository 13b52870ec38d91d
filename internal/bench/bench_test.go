package bench

import (
	"strings"
	"testing"
)

func TestRunAllMatch(t *testing.T) {
	// "131415" wins immediately on move 7, the fastest possible win,
	// so its score is exactly MaxScore (18).
	input := "131415 18\n"

	result, err := Run(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Positions != 1 {
		t.Fatalf("Positions = %d, want 1", result.Positions)
	}
	if len(result.Mismatches) != 0 {
		t.Fatalf("Mismatches = %v, want none", result.Mismatches)
	}
}

func TestRunDetectsMismatch(t *testing.T) {
	input := "131415 -99\n"

	result, err := Run(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Positions != 1 {
		t.Fatalf("Positions = %d, want 1", result.Positions)
	}
	if len(result.Mismatches) != 1 {
		t.Fatalf("Mismatches = %v, want exactly one", result.Mismatches)
	}
	if result.Mismatches[0].Expected != -99 {
		t.Errorf("Mismatches[0].Expected = %d, want -99", result.Mismatches[0].Expected)
	}
}

func TestParseLineRejectsMalformed(t *testing.T) {
	_, err := Run(strings.NewReader("not-a-valid-line\n"))
	if err == nil {
		t.Fatal("expected an error for a malformed benchmark line")
	}
}

func TestParseLineRejectsNonIntegerScore(t *testing.T) {
	_, err := Run(strings.NewReader("131415 notanumber\n"))
	if err == nil {
		t.Fatal("expected an error for a non-integer expected score")
	}
}
