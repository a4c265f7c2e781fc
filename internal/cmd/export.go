package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/MeKo-Tech/noisegen/internal/mbtiles"
	"github.com/MeKo-Tech/noisegen/internal/render"
	"github.com/MeKo-Tech/noisegen/internal/terrain"
	"github.com/MeKo-Tech/noisegen/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a tile pyramid to an MBTiles archive",
	Long: `Export renders a z/x/y tile pyramid of a preset noise graph and stores
the tiles in an MBTiles archive. World coordinates derive from the tile
grid, so neighbouring tiles line up seamlessly across zoom levels.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Int("zoom-min", 0, "Minimum zoom level")
	exportCmd.Flags().Int("zoom-max", 3, "Maximum zoom level")
	exportCmd.Flags().Int("tile-size", 256, "Tile size in pixels")
	exportCmd.Flags().Float64("extent", 2048, "World units covered by the full pyramid")
	exportCmd.Flags().Bool("palette", false, "Apply the terrain color palette instead of grayscale")
	exportCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	exportCmd.Flags().Bool("progress", true, "Show progress bar during export")
	exportCmd.Flags().StringP("output", "o", "noise.mbtiles", "Output MBTiles path")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"export.zoom_min", "zoom-min"},
		{"export.zoom_max", "zoom-max"},
		{"export.tile_size", "tile-size"},
		{"export.extent", "extent"},
		{"export.palette", "palette"},
		{"export.workers", "workers"},
		{"export.progress", "progress"},
		{"export.output", "output"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, exportCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	preset := viper.GetString("preset")
	seed := viper.GetInt32("seed")
	zoomMin := viper.GetInt("export.zoom_min")
	zoomMax := viper.GetInt("export.zoom_max")
	tileSize := viper.GetInt("export.tile_size")
	extent := viper.GetFloat64("export.extent")
	palette := viper.GetBool("export.palette")
	workers := viper.GetInt("export.workers")
	showProgress := viper.GetBool("export.progress")
	output := viper.GetString("export.output")

	if logger == nil {
		initLogging()
	}

	if zoomMin < 0 || zoomMax < 0 {
		return fmt.Errorf("zoom levels must be non-negative")
	}
	if zoomMin > zoomMax {
		return fmt.Errorf("--zoom-min (%d) must be <= --zoom-max (%d)", zoomMin, zoomMax)
	}
	if tileSize < 1 {
		return fmt.Errorf("invalid tile size %d", tileSize)
	}
	if extent <= 0 {
		return fmt.Errorf("invalid extent %f", extent)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	node, err := terrain.Preset(preset)
	if err != nil {
		return err
	}

	tasks := worker.Tasks(zoomMin, zoomMax)

	metadata := mbtiles.Metadata{
		Name:        fmt.Sprintf("%s-%d", preset, seed),
		Format:      "png",
		Description: "Procedurally generated noise tiles",
		Version:     "1.0",
		Preset:      preset,
		Seed:        int64(seed),
		Bounds:      [4]float64{-extent / 2, -extent / 2, extent / 2, extent / 2},
		Center:      [3]float64{0, 0, float64((zoomMin + zoomMax) / 2)},
		MinZoom:     zoomMin,
		MaxZoom:     zoomMax,
	}

	writer, err := mbtiles.NewWriter(output, metadata)
	if err != nil {
		return fmt.Errorf("failed to create MBTiles writer: %w", err)
	}
	defer writer.Close()

	renderer := worker.RendererFunc(func(ctx context.Context, z, x, y int) ([]byte, error) {
		tileWorld := extent / float64(int(1)<<z)
		params := render.HeightmapParams{
			Width:   tileSize,
			Height:  tileSize,
			OriginX: -extent/2 + float64(x)*tileWorld,
			OriginY: -extent/2 + float64(y)*tileWorld,
			Step:    tileWorld / float64(tileSize),
			Palette: palette,
		}

		img, err := render.Heightmap(node, seed, params)
		if err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := render.EncodePNG(&buf, img); err != nil {
			return nil, err
		}
		if err := writer.WriteTile(z, x, y, buf.Bytes()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received interrupt signal, cancelling...")
		cancel()
	}()

	logger.Info("Exporting tile pyramid",
		"preset", preset,
		"seed", seed,
		"zoom_range", fmt.Sprintf("%d-%d", zoomMin, zoomMax),
		"tiles", len(tasks),
		"tile_size", tileSize,
		"workers", workers,
		"output", output,
	)

	progress := worker.NewProgress(len(tasks), showProgress)

	pool := worker.New(worker.Config{
		Workers:    workers,
		Renderer:   renderer,
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	var failedCount int
	for _, res := range results {
		if res.Err != nil {
			failedCount++
			logger.Error("Tile render failed",
				"z", res.Task.Z, "x", res.Task.X, "y", res.Task.Y, "error", res.Err)
		}
	}

	logger.Info(progress.Summary())

	if failedCount > 0 {
		return fmt.Errorf("%d tiles failed to render", failedCount)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush MBTiles: %w", err)
	}

	logger.Info("MBTiles export complete", "path", output)
	return nil
}
