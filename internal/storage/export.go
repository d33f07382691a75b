package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Run    RunMetadata   `json:"run"`
	Events []EventRecord `json:"events,omitempty"`
}

type EventRecord struct {
	Ekin float64 `json:"ekin_final"`
	Mu   float64 `json:"mu"`
}

// Export gathers a stored run for export; events are only read when asked for.
func (s *Store) Export(runID string, withEvents bool) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	data := &ExportData{Run: *meta}
	if !withEvents {
		return data, nil
	}

	events, err := s.LoadEvents(runID)
	if err != nil {
		return nil, err
	}
	data.Events = make([]EventRecord, len(events))
	for i, ev := range events {
		data.Events[i] = EventRecord{Ekin: float64(ev.Ekin), Mu: float64(ev.Mu)}
	}
	return data, nil
}

func WriteJSON(w io.Writer, data *ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, data *ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, data)
}
