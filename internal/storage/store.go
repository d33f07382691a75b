package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/facette/natsort"
	"github.com/google/uuid"

	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/sampling"
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
	ID           string             `json:"id"`
	UUID         string             `json:"uuid"`
	Material     string             `json:"material"`
	Request      string             `json:"request"`
	Process      string             `json:"process"`
	Timestamp    time.Time          `json:"timestamp"`
	Seed         uint64             `json:"seed"`
	Workers      int                `json:"workers"`
	Energy       float64            `json:"energy"`
	Events       int                `json:"events"`
	CrossSection float64            `json:"cross_section"`
	Metrics      map[string]float64 `json:"metrics"`
}

// RunInfo describes what was sampled; Save fills in the rest from the result.
type RunInfo struct {
	Material string
	Request  string
	Process  string
	Seed     uint64
	Workers  int
}

func (s *Store) Save(info RunInfo, result *sampling.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", info.Material, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		UUID:         uuid.New().String(),
		Material:     info.Material,
		Request:      info.Request,
		Process:      info.Process,
		Timestamp:    now,
		Seed:         info.Seed,
		Workers:      info.Workers,
		Energy:       result.Energy,
		Events:       len(result.Events),
		CrossSection: result.CrossSection,
		Metrics:      result.Metrics,
	}

	if err := writeRun(runDir, meta, result.Events); err != nil {
		os.RemoveAll(runDir)
		return "", err
	}
	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, events []host.ScatterOutcome) error {
	if err := writeMetadata(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return err
	}
	return writeEvents(filepath.Join(runDir, "events.csv"), events)
}

func writeMetadata(path string, meta RunMetadata) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeEvents(path string, events []host.ScatterOutcome) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"ekin_final", "mu"}); err != nil {
		return err
	}
	for _, ev := range events {
		row := []string{
			strconv.FormatFloat(float64(ev.Ekin), 'g', -1, 64),
			strconv.FormatFloat(float64(ev.Mu), 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the stored runs in natural order of their IDs.
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

	sort.Slice(runs, func(i, j int) bool { return natsort.Compare(runs[i].ID, runs[j].ID) })
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

func (s *Store) LoadEvents(runID string) ([]host.ScatterOutcome, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "events.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []host.ScatterOutcome{}, nil
	}

	events := make([]host.ScatterOutcome, 0, len(records)-1)
	for i, rec := range records[1:] {
		ekin, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("events.csv line %d: %w", i+2, err)
		}
		mu, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("events.csv line %d: %w", i+2, err)
		}
		events = append(events, host.ScatterOutcome{Ekin: host.NeutronEnergy(ekin), Mu: host.CosineScatAngle(mu)})
	}
	return events, nil
}
