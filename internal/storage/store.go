// Package storage records headless runs: a metadata document plus a CSV
// telemetry trace per run directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/san-kum/cardash/internal/car"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Timestamp time.Time          `json:"timestamp"`
	Duration  float64            `json:"duration"`
	Summary   map[string]float64 `json:"summary"`
}

// Sample is one recorded telemetry row.
type Sample struct {
	Time float64
	car.Snapshot
}

var traceHeader = []string{"time", "speed", "average", "odometry", "ignition", "cruise", "speeding"}

func (s *Store) Save(name string, duration float64, trace []Sample) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      name,
		Timestamp: time.Now(),
		Duration:  duration,
		Summary:   Summarize(trace),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(traceHeader); err != nil {
		return "", err
	}
	for _, sm := range trace {
		row := []string{
			strconv.FormatFloat(sm.Time, 'f', 3, 64),
			strconv.FormatFloat(sm.Speed, 'f', 4, 64),
			strconv.FormatFloat(sm.AverageSpeed, 'f', 4, 64),
			strconv.FormatFloat(sm.Odometry, 'f', 4, 64),
			formatBool(sm.Ignition),
			formatBool(sm.CruiseMode),
			formatBool(sm.Speeding),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, errors.Wrapf(err, "loading run %s", runID)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "parsing run %s metadata", runID)
	}
	return &meta, nil
}

func (s *Store) LoadTrace(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, errors.Wrapf(err, "loading run %s trace", runID)
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parsing run %s trace", runID)
	}

	trace := make([]Sample, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < len(traceHeader) {
			continue
		}
		var sm Sample
		sm.Time = parseFloat(record[0])
		sm.Speed = parseFloat(record[1])
		sm.AverageSpeed = parseFloat(record[2])
		sm.Odometry = parseFloat(record[3])
		sm.Ignition = record[4] == "1"
		sm.CruiseMode = record[5] == "1"
		sm.Speeding = record[6] == "1"
		trace = append(trace, sm)
	}
	return trace, nil
}

// Summarize computes headline metrics from a trace.
func Summarize(trace []Sample) map[string]float64 {
	summary := make(map[string]float64)
	if len(trace) == 0 {
		return summary
	}

	var maxSpeed, sum, speeding float64
	for i, sm := range trace {
		if sm.Speed > maxSpeed {
			maxSpeed = sm.Speed
		}
		sum += sm.Speed
		if sm.Speeding && i > 0 {
			speeding += sm.Time - trace[i-1].Time
		}
	}

	summary["distance"] = trace[len(trace)-1].Odometry
	summary["max_speed"] = maxSpeed
	summary["mean_speed"] = sum / float64(len(trace))
	summary["time_speeding"] = speeding
	return summary
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
