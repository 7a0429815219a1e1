package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"atlasgeo/internal/models"
	"atlasgeo/pkg/atlas"
	"atlasgeo/pkg/config"
	"atlasgeo/pkg/neighborhood"
	"atlasgeo/pkg/stats"
	"atlasgeo/pkg/transform"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "atlasgeo.yaml", "Path to YAML configuration file")
	size := flag.Int("size", 32, "Side length of the synthetic demo volume in voxels")
	numRegions := flag.Int("regions", 5, "Number of regions in the synthetic demo volume")
	numSamples := flag.Int("samples", 8, "Number of random sample points when none are configured")
	seed := flag.Int64("seed", 1, "Random seed for the synthetic volume and sample points")
	metric := flag.String("metric", "", "Aggregation metric override (mean or median)")
	dilation := flag.Int("dilation", -1, "Neighborhood dilation override in voxels")
	flag.Parse()

	// Load configuration, applying command line overrides
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *metric != "" {
		cfg.Aggregation.Metric = *metric
	}
	if *dilation >= 0 {
		cfg.Sampling.Dilation = *dilation
	}

	reducer, err := stats.Parse(cfg.Aggregation.Metric)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	fmt.Println("================================")
	fmt.Println("ATLASGEO: LABELED-ATLAS GEOMETRY PIPELINE")
	fmt.Println("================================")

	// Build a synthetic labeled volume; real atlases arrive already
	// materialized by an external loader satisfying the same contract.
	rng := rand.New(rand.NewSource(*seed))
	vol, regionSeeds := buildDemoVolume(rng, *size, *numRegions)
	fmt.Printf("Synthetic atlas: %dx%dx%d voxels, %d seeded regions\n",
		*size, *size, *size, *numRegions)

	// Step 1: extract region labels
	labels := atlas.UniqueLabels(vol)
	fmt.Printf("\nStep 1: Found %d region labels: %v\n", len(labels), labels)

	// Validate region metadata coverage for the labels actually present
	info := make([]atlas.RegionInfo, len(regionSeeds))
	for i, s := range regionSeeds {
		hemi := "L"
		if s[0] >= *size/2 {
			hemi = "R"
		}
		info[i] = atlas.RegionInfo{ID: i + 1, Hemisphere: hemi, Structure: "cortex"}
	}
	if err := atlas.CheckInfo(vol, info); err != nil {
		log.Fatalf("Atlas metadata check failed: %v", err)
	}
	fmt.Println("Atlas metadata covers all labels present in the volume")

	// Step 2: compute region centroids
	centroidsVox, err := atlas.Centroids(vol, labels)
	if err != nil {
		log.Fatalf("Centroid computation failed: %v", err)
	}
	centroidsWorld, err := atlas.CentroidsWorld(vol, labels)
	if err != nil {
		log.Fatalf("World-space centroid computation failed: %v", err)
	}

	// The worldSpace toggle only selects which coordinates are reported;
	// sample points are world coordinates, so assignment below always
	// resolves against world-space centroids.
	reported := centroidsWorld
	space := "world"
	if !cfg.Sampling.WorldSpace {
		reported = centroidsVox
		space = "voxel"
	}
	fmt.Printf("\nStep 2: Region centroids (%s space):\n", space)
	for row, label := range labels {
		fmt.Printf("  region %2d  (%7.2f, %7.2f, %7.2f)\n",
			label, reported.At(row, 0), reported.At(row, 1), reported.At(row, 2))
	}

	// Step 3: assign sample points to their nearest regions
	points := samplePoints(cfg, rng, vol, *numSamples)
	fmt.Printf("\nStep 3: Assigning %d sample points (dilation %d, metric %s):\n",
		len(points), cfg.Sampling.Dilation, reducer.Name())

	assigned, err := assignRegions(points, centroidsWorld)
	if err != nil {
		log.Fatalf("Nearest-region resolution failed: %v", err)
	}

	for i, p := range points {
		label := labels[assigned[i]]

		occupancy, err := neighborhoodOccupancy(vol, p, label, cfg.Sampling.Dilation, reducer)
		if err != nil {
			log.Fatalf("Neighborhood sampling failed: %v", err)
		}

		fmt.Printf("  point (%7.2f, %7.2f, %7.2f) -> region %2d  window occupancy %.2f\n",
			p[0], p[1], p[2], label, occupancy)
	}

	fmt.Println("\nPipeline completed successfully")
}

// buildDemoVolume synthesizes a labeled volume with spherical regions grown
// around random seed voxels, and returns the seed positions. The affine uses
// a 2mm isotropic spacing with the origin at the volume center.
func buildDemoVolume(rng *rand.Rand, size, numRegions int) (*models.GridVolume, [][3]int) {
	spacing := 2.0
	origin := -spacing * float64(size) / 2
	affine := mat.NewDense(4, 4, []float64{
		spacing, 0, 0, origin,
		0, spacing, 0, origin,
		0, 0, spacing, origin,
		0, 0, 0, 1,
	})

	vol, err := models.NewGridVolume(size, size, size, affine)
	if err != nil {
		log.Fatalf("Failed to create demo volume: %v", err)
	}

	seeds := make([][3]int, numRegions)
	for r := range seeds {
		seeds[r] = [3]int{rng.Intn(size), rng.Intn(size), rng.Intn(size)}
	}

	// Each voxel joins the closest seed's region when within the growth
	// radius; elsewhere it stays background.
	radius2 := float64(size*size) / 16
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			for k := 0; k < size; k++ {
				best, bestDist := 0, radius2
				for r, s := range seeds {
					di, dj, dk := float64(i-s[0]), float64(j-s[1]), float64(k-s[2])
					if d2 := di*di + dj*dj + dk*dk; d2 < bestDist {
						bestDist = d2
						best = r + 1
					}
				}
				if best != 0 {
					vol.SetLabel(i, j, k, best)
				}
			}
		}
	}
	return vol, seeds
}

// assignRegions resolves each world-space sample point to the row index of
// its nearest world-space centroid.
func assignRegions(points [][3]float64, centroidsWorld mat.Matrix) ([]int, error) {
	assigned := make([]int, len(points))
	for i, p := range points {
		idx, err := atlas.ClosestCentroid(p[:], centroidsWorld)
		if err != nil {
			return nil, err
		}
		assigned[i] = idx
	}
	return assigned, nil
}

// samplePoints returns the configured sample coordinates, or random points
// inside the volume's world bounds when none are configured.
func samplePoints(cfg *config.Config, rng *rand.Rand, vol atlas.Volume, n int) [][3]float64 {
	if len(cfg.Sampling.Points) > 0 {
		points := make([][3]float64, len(cfg.Sampling.Points))
		for i, p := range cfg.Sampling.Points {
			points[i] = [3]float64{p.X, p.Y, p.Z}
		}
		return points
	}

	ni, nj, nk := vol.Dims()
	points := make([][3]float64, n)
	for i := range points {
		vox := mat.NewDense(1, 3, []float64{
			rng.Float64() * float64(ni-1),
			rng.Float64() * float64(nj-1),
			rng.Float64() * float64(nk-1),
		})
		world, err := transform.VoxelToWorld(vol.Affine(), vox)
		if err != nil {
			log.Fatalf("Failed to generate sample points: %v", err)
		}
		points[i] = [3]float64{world.At(0, 0), world.At(0, 1), world.At(0, 2)}
	}
	return points
}

// neighborhoodOccupancy converts a world-space point to its voxel index,
// expands the surrounding neighborhood, and reduces the per-voxel indicator
// of membership in the assigned region with the configured reducer. Voxels
// outside the volume bounds count as background.
func neighborhoodOccupancy(vol atlas.Volume, point [3]float64, label, dilation int, reducer stats.Reducer) (float64, error) {
	coords := mat.NewDense(1, 3, []float64{point[0], point[1], point[2]})
	vox, err := transform.WorldToVoxel(vol.Affine(), coords)
	if err != nil {
		return 0, err
	}

	it, err := neighborhood.NewIterator(vox[0], dilation)
	if err != nil {
		return 0, err
	}

	ni, nj, nk := vol.Dims()
	indicator := make([]float64, 0, it.Count())
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		hit := 0.0
		if c[0] >= 0 && c[0] < ni && c[1] >= 0 && c[1] < nj && c[2] >= 0 && c[2] < nk {
			if vol.Label(c[0], c[1], c[2]) == label {
				hit = 1.0
			}
		}
		indicator = append(indicator, hit)
	}
	return reducer.Reduce(indicator), nil
}
