// Package mbtiles reads and writes MBTiles tile archives.
//
// Noise tile pyramids are stored in the standard MBTiles sqlite layout
// (metadata + tiles tables, TMS row order, gzip-compressed blobs) so any
// MBTiles-aware viewer can open an exported archive.
package mbtiles

import "fmt"

// Metadata describes a tileset. Preset and Seed record how the noise field
// was generated so an archive can be reproduced.
type Metadata struct {
	Name        string // human-readable tileset identifier
	Format      string // tile blob type, png for noise exports
	Description string // human-readable description
	Version     string // tileset version string
	Preset      string // noise preset the tiles were rendered from
	Seed        int64  // seed used for rendering
	Bounds      [4]float64
	Center      [3]float64
	MinZoom     int
	MaxZoom     int
}

// ToMap flattens the metadata into MBTiles key/value rows. Standard keys
// follow the MBTiles spec; preset and seed are custom keys.
func (m Metadata) ToMap() map[string]string {
	result := make(map[string]string)

	if m.Name != "" {
		result["name"] = m.Name
	}
	if m.Format != "" {
		result["format"] = m.Format
	}
	if m.Description != "" {
		result["description"] = m.Description
	}
	if m.Version != "" {
		result["version"] = m.Version
	}
	if m.Preset != "" {
		result["preset"] = m.Preset
	}
	if m.Seed != 0 {
		result["seed"] = fmt.Sprintf("%d", m.Seed)
	}
	if m.MinZoom > 0 {
		result["minzoom"] = fmt.Sprintf("%d", m.MinZoom)
	}
	if m.MaxZoom > 0 {
		result["maxzoom"] = fmt.Sprintf("%d", m.MaxZoom)
	}
	if m.Bounds != [4]float64{} {
		result["bounds"] = fmt.Sprintf("%.6f,%.6f,%.6f,%.6f",
			m.Bounds[0], m.Bounds[1], m.Bounds[2], m.Bounds[3])
	}
	if m.Center != [3]float64{} {
		result["center"] = fmt.Sprintf("%.6f,%.6f,%d",
			m.Center[0], m.Center[1], int(m.Center[2]))
	}

	return result
}
