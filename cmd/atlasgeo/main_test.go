package main

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"atlasgeo/internal/models"
	"atlasgeo/pkg/atlas"
)

// TestAssignRegionsWorldSpace verifies that sample points, which are world
// coordinates, resolve against world-space centroids. With an affine that
// translates the volume by (100, 0, 0), a query near the world origin must
// pick the region whose world centroid is closest, not the one whose voxel
// centroid happens to coincide with the raw query numbers.
func TestAssignRegionsWorldSpace(t *testing.T) {
	affine := mat.NewDense(4, 4, []float64{
		1, 0, 0, 100,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	vol, err := models.NewGridVolume(4, 1, 1, affine)
	if err != nil {
		t.Fatalf("Failed to create volume: %v", err)
	}
	vol.SetLabel(0, 0, 0, 1) // world centroid (100, 0, 0)
	vol.SetLabel(2, 0, 0, 2) // world centroid (102, 0, 0)

	centroidsWorld, err := atlas.CentroidsWorld(vol, []int{1, 2})
	if err != nil {
		t.Fatalf("CentroidsWorld failed: %v", err)
	}

	// In voxel terms this query equals region 2's centroid exactly, but in
	// world terms it is closest to region 1.
	points := [][3]float64{{2, 0, 0}}
	assigned, err := assignRegions(points, centroidsWorld)
	if err != nil {
		t.Fatalf("assignRegions failed: %v", err)
	}
	if assigned[0] != 0 {
		t.Errorf("Expected world-space assignment to index 0, got %d", assigned[0])
	}

	// A query at region 2's world centroid resolves to index 1.
	assigned, err = assignRegions([][3]float64{{102, 0, 0}}, centroidsWorld)
	if err != nil {
		t.Fatalf("assignRegions failed: %v", err)
	}
	if assigned[0] != 1 {
		t.Errorf("Expected assignment to index 1, got %d", assigned[0])
	}
}
