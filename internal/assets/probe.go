package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// DefaultProbeWorkers bounds concurrent file opens during a probe.
const DefaultProbeWorkers = 8

// ProbeResult describes one referenced image.
type ProbeResult struct {
	Path   string
	Exists bool
	Width  int
	Height int
	Format string
	Err    error
}

// Probe checks each path under base and reads its image header. Only the
// header is decoded. Missing or unreadable files are recorded in the
// result; the returned error is non-nil only when ctx ends first.
func Probe(ctx context.Context, base string, paths []string, workers int) ([]ProbeResult, error) {
	if workers <= 0 {
		workers = DefaultProbeWorkers
	}
	results := make([]ProbeResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = probeOne(base, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("probe: %w", err)
	}
	return results, nil
}

func probeOne(base, p string) ProbeResult {
	r := ProbeResult{Path: p}
	f, err := os.Open(filepath.Join(base, filepath.FromSlash(p)))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.Err = err
		}
		return r
	}
	defer f.Close()
	r.Exists = true
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		r.Err = fmt.Errorf("decode header %s: %w", p, err)
		return r
	}
	r.Width, r.Height, r.Format = cfg.Width, cfg.Height, format
	return r
}

// Missing returns the paths of results whose file does not exist.
func Missing(results []ProbeResult) []string {
	var out []string
	for _, r := range results {
		if !r.Exists {
			out = append(out, r.Path)
		}
	}
	return out
}
