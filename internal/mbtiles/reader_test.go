package mbtiles

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReader_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.mbtiles")

	metadata := Metadata{
		Name:        "mountains-1337",
		Format:      "png",
		MinZoom:     0,
		MaxZoom:     4,
		Bounds:      [4]float64{-1024, -1024, 1024, 1024},
		Center:      [3]float64{0, 0, 2},
		Description: "Noise tile export",
		Preset:      "mountains",
		Seed:        1337,
		Version:     "1.0",
	}

	w, err := NewWriter(dbPath, metadata)
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}

	pngData := []byte("fake png data for testing")
	tiles := []struct{ z, x, y int }{
		{2, 1, 2},
		{2, 3, 0},
		{4, 11, 7},
	}

	for _, tile := range tiles {
		err = w.WriteTile(tile.z, tile.x, tile.y, pngData)
		if err != nil {
			t.Fatalf("Failed to write tile %d/%d/%d: %v", tile.z, tile.x, tile.y, err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close writer: %v", err)
	}

	r, err := OpenReader(dbPath)
	if err != nil {
		t.Fatalf("Failed to open reader: %v", err)
	}
	defer r.Close()

	count, err := r.TileCount()
	if err != nil {
		t.Fatalf("Failed to count tiles: %v", err)
	}
	if count != len(tiles) {
		t.Errorf("TileCount = %d, want %d", count, len(tiles))
	}

	for _, tile := range tiles {
		data, err := r.ReadTile(tile.z, tile.x, tile.y)
		if err != nil {
			t.Fatalf("Failed to read tile %d/%d/%d: %v", tile.z, tile.x, tile.y, err)
		}

		if string(data) != string(pngData) {
			t.Errorf("Tile %d/%d/%d data mismatch: got %q, want %q",
				tile.z, tile.x, tile.y, string(data), string(pngData))
		}
	}
}

func TestReader_Metadata(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.mbtiles")

	expectedMetadata := Metadata{
		Name:        "nebula-42",
		Format:      "png",
		MinZoom:     1,
		MaxZoom:     5,
		Bounds:      [4]float64{-512, -512, 512, 512},
		Center:      [3]float64{0, 0, 3},
		Description: "Noise tile export",
		Preset:      "nebula",
		Seed:        42,
		Version:     "1.0",
	}

	w, err := NewWriter(dbPath, expectedMetadata)
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close writer: %v", err)
	}

	r, err := OpenReader(dbPath)
	if err != nil {
		t.Fatalf("Failed to open reader: %v", err)
	}
	defer r.Close()

	meta, err := r.Metadata()
	if err != nil {
		t.Fatalf("Failed to read metadata: %v", err)
	}

	if meta.Name != expectedMetadata.Name {
		t.Errorf("Name mismatch: got %q, want %q", meta.Name, expectedMetadata.Name)
	}
	if meta.Format != expectedMetadata.Format {
		t.Errorf("Format mismatch: got %q, want %q", meta.Format, expectedMetadata.Format)
	}
	if meta.Preset != expectedMetadata.Preset {
		t.Errorf("Preset mismatch: got %q, want %q", meta.Preset, expectedMetadata.Preset)
	}
	if meta.Seed != expectedMetadata.Seed {
		t.Errorf("Seed mismatch: got %d, want %d", meta.Seed, expectedMetadata.Seed)
	}
	if meta.MinZoom != expectedMetadata.MinZoom {
		t.Errorf("MinZoom mismatch: got %d, want %d", meta.MinZoom, expectedMetadata.MinZoom)
	}
	if meta.MaxZoom != expectedMetadata.MaxZoom {
		t.Errorf("MaxZoom mismatch: got %d, want %d", meta.MaxZoom, expectedMetadata.MaxZoom)
	}
	if meta.Bounds != expectedMetadata.Bounds {
		t.Errorf("Bounds mismatch: got %v, want %v", meta.Bounds, expectedMetadata.Bounds)
	}
	if meta.Center != expectedMetadata.Center {
		t.Errorf("Center mismatch: got %v, want %v", meta.Center, expectedMetadata.Center)
	}
}

func TestReader_TileNotFound(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.mbtiles")

	metadata := Metadata{
		Name:   "empty",
		Format: "png",
	}

	w, err := NewWriter(dbPath, metadata)
	if err != nil {
		t.Fatalf("Failed to create writer: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close writer: %v", err)
	}

	r, err := OpenReader(dbPath)
	if err != nil {
		t.Fatalf("Failed to open reader: %v", err)
	}
	defer r.Close()

	_, err = r.ReadTile(3, 2, 1)
	if err == nil {
		t.Error("Expected error for non-existent tile, got nil")
	}
}

func TestReader_InvalidDatabase(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "invalid.mbtiles")

	if err := os.WriteFile(dbPath, []byte("not a database"), 0o644); err != nil {
		t.Fatalf("Failed to create invalid file: %v", err)
	}

	_, err := OpenReader(dbPath)
	if err == nil {
		t.Error("Expected error for invalid database, got nil")
	}
}
