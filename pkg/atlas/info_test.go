package atlas

import (
	"os"
	"path/filepath"
	"testing"
)

// TestCheckInfoComplete verifies that metadata covering every label in the
// volume passes, with extra rows allowed.
func TestCheckInfoComplete(t *testing.T) {
	vol := newTestVolume(t, 3, 3, 3, nil)
	vol.SetLabel(0, 0, 0, 1)
	vol.SetLabel(1, 1, 1, 2)

	info := []RegionInfo{
		{ID: 1, Hemisphere: "L", Structure: "cortex"},
		{ID: 2, Hemisphere: "R", Structure: "cortex"},
		{ID: 3, Hemisphere: "L", Structure: "subcortex"}, // not in volume: fine
	}
	if err := CheckInfo(vol, info); err != nil {
		t.Errorf("Expected complete metadata to pass, got: %v", err)
	}
}

// TestCheckInfoMissing verifies that a label present in the volume without a
// metadata row fails the check.
func TestCheckInfoMissing(t *testing.T) {
	vol := newTestVolume(t, 3, 3, 3, nil)
	vol.SetLabel(0, 0, 0, 1)
	vol.SetLabel(1, 1, 1, 2)

	info := []RegionInfo{{ID: 1, Hemisphere: "L", Structure: "cortex"}}
	if err := CheckInfo(vol, info); err == nil {
		t.Error("Expected error for missing metadata row, got nil")
	}
}

// TestLoadInfoCSV verifies reading the id/hemisphere/structure table,
// tolerating extra columns and arbitrary column order.
func TestLoadInfoCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info.csv")
	contents := "name,id,hemisphere,structure\n" +
		"precentral,1,L,cortex\n" +
		"thalamus,2,R,subcortex\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}

	info, err := LoadInfoCSV(path)
	if err != nil {
		t.Fatalf("LoadInfoCSV failed: %v", err)
	}
	if len(info) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(info))
	}
	if info[0].ID != 1 || info[0].Hemisphere != "L" || info[0].Structure != "cortex" {
		t.Errorf("Unexpected first row: %+v", info[0])
	}
	if info[1].ID != 2 || info[1].Hemisphere != "R" || info[1].Structure != "subcortex" {
		t.Errorf("Unexpected second row: %+v", info[1])
	}
}

// TestLoadInfoCSVInvalid verifies missing files, missing columns and bad
// identifiers are reported.
func TestLoadInfoCSVInvalid(t *testing.T) {
	if _, err := LoadInfoCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}

	noColumn := filepath.Join(t.TempDir(), "nocol.csv")
	if err := os.WriteFile(noColumn, []byte("id,hemisphere\n1,L\n"), 0644); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}
	if _, err := LoadInfoCSV(noColumn); err == nil {
		t.Error("Expected error for missing structure column, got nil")
	}

	badID := filepath.Join(t.TempDir(), "badid.csv")
	if err := os.WriteFile(badID, []byte("id,hemisphere,structure\nseven,L,cortex\n"), 0644); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}
	if _, err := LoadInfoCSV(badID); err == nil {
		t.Error("Expected error for non-integer region id, got nil")
	}
}
