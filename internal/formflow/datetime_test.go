package formflow

import (
	"testing"
	"time"
)

func TestToLocalInput(t *testing.T) {
	plus2 := time.FixedZone("UTC+2", 2*3600)

	got, err := ToLocalInput("2025-06-01T10:00:00.000Z", plus2)
	if err != nil {
		t.Fatalf("ToLocalInput failed: %v", err)
	}
	if got != "2025-06-01T12:00" {
		t.Errorf("expected 2025-06-01T12:00, got %s", got)
	}
}

func TestToLocalInputUTC(t *testing.T) {
	got, err := ToLocalInput("2025-06-01T10:30:00Z", time.UTC)
	if err != nil {
		t.Fatalf("ToLocalInput failed: %v", err)
	}
	if got != "2025-06-01T10:30" {
		t.Errorf("expected 2025-06-01T10:30, got %s", got)
	}
}

func TestFromLocalInput(t *testing.T) {
	plus2 := time.FixedZone("UTC+2", 2*3600)

	got, err := FromLocalInput("2025-06-01T12:00", plus2)
	if err != nil {
		t.Fatalf("FromLocalInput failed: %v", err)
	}
	if got != "2025-06-01T10:00:00Z" {
		t.Errorf("expected 2025-06-01T10:00:00Z, got %s", got)
	}
}

func TestRoundTripPreservesInstant(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)

	local, err := ToLocalInput("2025-12-31T03:00:00Z", loc)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromLocalInput(local, loc)
	if err != nil {
		t.Fatal(err)
	}
	if back != "2025-12-31T03:00:00Z" {
		t.Errorf("round trip changed the instant: %s", back)
	}
}

func TestInvalidInputs(t *testing.T) {
	if _, err := ToLocalInput("June 1st", time.UTC); err == nil {
		t.Error("expected error for non-ISO input")
	}
	if _, err := FromLocalInput("2025-06-01 12:00", time.UTC); err == nil {
		t.Error("expected error for wrong local layout")
	}
}
