// Package storage persists visualization runs as per-run directories:
// metadata.json with parameters and the cycle report, trajectory.csv with
// the ordered steps.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/mpetriv/lcgviz/internal/lcg"
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
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Modulus    int64     `json:"modulus"`
	Multiplier int64     `json:"multiplier"`
	Increment  int64     `json:"increment"`
	Seed       int64     `json:"seed"`
	TailLength int       `json:"tail_length"`
	CycleStart int64     `json:"cycle_start"`
	CycleLen   int       `json:"cycle_length"`
	Steps      int       `json:"steps"`
}

func newRunID(now time.Time) string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(now.UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}

func (s *Store) Save(traj *lcg.Trajectory) (string, error) {
	now := time.Now()
	runID := newRunID(now)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  now,
		Modulus:    traj.Params.Modulus,
		Multiplier: traj.Params.Multiplier,
		Increment:  traj.Params.Increment,
		Seed:       traj.Params.Seed,
		TailLength: traj.Cycle.TailLength,
		CycleStart: traj.Cycle.Start,
		CycleLen:   traj.Cycle.Length,
		Steps:      len(traj.Steps),
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

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "value"}); err != nil {
		return "", err
	}
	for _, st := range traj.Steps {
		row := []string{
			strconv.Itoa(st.Index),
			strconv.FormatInt(st.Value, 10),
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

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrajectory rebuilds the saved trajectory, cycle report included, from
// a run directory.
func (s *Store) LoadTrajectory(runID string) (*lcg.Trajectory, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "trajectory.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("storage: run %s has empty trajectory", runID)
	}

	steps := make([]lcg.Step, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 2 {
			continue
		}
		idx, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		val, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			continue
		}
		steps = append(steps, lcg.Step{Index: idx, Value: val})
	}

	return &lcg.Trajectory{
		Params: lcg.Params{
			Modulus:    meta.Modulus,
			Multiplier: meta.Multiplier,
			Increment:  meta.Increment,
			Seed:       meta.Seed,
		},
		Steps: steps,
		Cycle: lcg.Cycle{
			TailLength: meta.TailLength,
			Start:      meta.CycleStart,
			Length:     meta.CycleLen,
		},
	}, nil
}
