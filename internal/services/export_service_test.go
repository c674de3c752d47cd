package services

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"yodiet/internal/models"
)

type stubExportReader struct {
	samples []models.HealthProgressWithGoal
	err     error
}

func (stub *stubExportReader) ListProgressWithGoalInRange(time.Time, time.Time) ([]models.HealthProgressWithGoal, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	return stub.samples, nil
}

func TestWriteCSVRendersSamples(t *testing.T) {
	reader := &stubExportReader{samples: []models.HealthProgressWithGoal{
		{Date: time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC), Title: "Drink water", Value: 8, Unit: "glasses", IsCompleted: true},
		{Date: time.Date(2026, 8, 25, 20, 0, 0, 0, time.UTC), Title: "Walk", Value: 7500, Unit: "steps", IsCompleted: false},
	}}
	service := NewExportService(reader)

	var buffer bytes.Buffer
	count, err := service.WriteCSV(&buffer, time.Time{}, time.Now())
	if err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 exported samples, got %d", count)
	}

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Date,Goal,Value,Unit,Completed" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "2026-08-26 09:30,Drink water,8,glasses,true" {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if lines[2] != "2026-08-25 20:00,Walk,7500,steps,false" {
		t.Fatalf("unexpected second row %q", lines[2])
	}
}

func TestWriteCSVEmptyRangeWritesHeaderOnly(t *testing.T) {
	service := NewExportService(&stubExportReader{})

	var buffer bytes.Buffer
	count, err := service.WriteCSV(&buffer, time.Time{}, time.Now())
	if err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no exported samples, got %d", count)
	}
	if strings.TrimSpace(buffer.String()) != "Date,Goal,Value,Unit,Completed" {
		t.Fatalf("expected header only, got %q", buffer.String())
	}
}

func TestWriteCSVPropagatesReadErrors(t *testing.T) {
	readErr := errors.New("disk gone")
	service := NewExportService(&stubExportReader{err: readErr})

	if _, err := service.WriteCSV(&bytes.Buffer{}, time.Time{}, time.Now()); !errors.Is(err, readErr) {
		t.Fatalf("expected the read error, got %v", err)
	}
}
