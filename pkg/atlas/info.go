package atlas

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// RegionInfo describes one atlas region: its label and the hemisphere and
// broad structural class it belongs to (e.g. "cortex", "subcortex").
type RegionInfo struct {
	ID         int
	Hemisphere string
	Structure  string
}

// CheckInfo confirms the provided metadata is sufficient for the volume:
// every region label present in the volume must have a corresponding
// RegionInfo row. Extra rows for labels not in the volume are allowed.
func CheckInfo(vol Volume, info []RegionInfo) error {
	known := make(map[int]struct{}, len(info))
	for _, row := range info {
		known[row.ID] = struct{}{}
	}

	var missing []int
	for _, label := range UniqueLabels(vol) {
		if _, ok := known[label]; !ok {
			missing = append(missing, label)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("atlas info does not account for region labels %v found in volume", missing)
	}
	return nil
}

// LoadInfoCSV reads region metadata from a CSV file. The header must contain
// at least the columns "id", "hemisphere" and "structure"; extra columns are
// ignored.
func LoadInfoCSV(path string) ([]RegionInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open atlas info file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse atlas info file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("atlas info file %s is empty", path)
	}

	// Locate required columns in the header.
	cols := map[string]int{"id": -1, "hemisphere": -1, "structure": -1}
	for idx, name := range records[0] {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := cols[name]; ok {
			cols[name] = idx
		}
	}
	for name, idx := range cols {
		if idx < 0 {
			return nil, fmt.Errorf("atlas info file missing required column %q", name)
		}
	}

	info := make([]RegionInfo, 0, len(records)-1)
	for line, rec := range records[1:] {
		id, err := strconv.Atoi(strings.TrimSpace(rec[cols["id"]]))
		if err != nil {
			return nil, fmt.Errorf("invalid region id on line %d: %v", line+2, err)
		}
		info = append(info, RegionInfo{
			ID:         id,
			Hemisphere: strings.TrimSpace(rec[cols["hemisphere"]]),
			Structure:  strings.TrimSpace(rec[cols["structure"]]),
		})
	}
	return info, nil
}
