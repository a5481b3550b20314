package assets

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDatasetPaths(t *testing.T) {
	l := NewLayout("")
	got := l.DatasetFrame("FSK_20241026073527GMT-04:00", 7)
	want := "assets/dataset-sample/FSK_20241026073527GMT-04:00/midsize/undistorted/RigCenter/focal_position_0007_frame_0000.jpg"
	if got != want {
		t.Fatalf("DatasetFrame:\n got %s\nwant %s", got, want)
	}
	if th := l.DatasetThumbnail("S"); th != "assets/dataset-sample/S/midsize/undistorted/RigCenter/focal_position_0000_frame_0000.jpg" {
		t.Fatalf("unexpected thumbnail %s", th)
	}
}

func TestDatasetSamples(t *testing.T) {
	l := NewLayout("")
	scenes := []string{"a", "b", "c", "d", "e", "f", "g"}
	got := l.DatasetSamples(scenes)
	if len(got) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(got))
	}
	if got[4] != "assets/dataset-sample/e/midsize/undistorted/RigCenter/focal_position_0004_frame_0000.jpg" {
		t.Fatalf("unexpected sample %s", got[4])
	}
	if n := len(l.DatasetSamples(scenes[:2])); n != 2 {
		t.Fatalf("short catalog should yield 2 samples, got %d", n)
	}
	if n := len(l.DatasetSamples(nil)); n != 0 {
		t.Fatalf("empty catalog yielded %d samples", n)
	}
}

func TestFocalPaths(t *testing.T) {
	l := NewLayout("static/assets")
	if got := l.FocalStart("img_00_position_01"); got != "static/assets/focal-stack-viewer/start/img_00_position_01/start.jpg" {
		t.Fatalf("FocalStart: %s", got)
	}
	if got := l.FocalFrame(MethodIP2P, "img_03_position_08", 4); got != "static/assets/focal-stack-viewer/ip2p/img_03_position_08/frame_4.jpg" {
		t.Fatalf("FocalFrame: %s", got)
	}
}

func TestPositionNumber(t *testing.T) {
	cases := map[string]string{
		"img_00_position_01": "01",
		"img_12_position_09": "09",
		"plain":              "",
	}
	for in, want := range cases {
		if got := PositionNumber(in); got != want {
			t.Errorf("PositionNumber(%q) = %q, want %q", in, got, want)
		}
	}
	if c := InputCaption("img_00_position_01"); c != "Input Focal Position 01" {
		t.Fatalf("unexpected caption %q", c)
	}
	if c := InputCaption("plain"); c != "Input" {
		t.Fatalf("unexpected caption %q", c)
	}
}

func TestCatalog(t *testing.T) {
	c := NewCatalog([]string{"a", "b", "a", "c"}, map[string]int{"b": 4, "zz": 2}, FallbackFrame)
	if c.Len() != 3 {
		t.Fatalf("expected duplicates dropped, got %v", c.Keys())
	}
	if i, ok := c.Index("c"); !ok || i != 2 {
		t.Fatalf("Index(c) = %d %v", i, ok)
	}
	if c.DefaultFrame("b") != 4 || c.DefaultFrame("a") != 1 || c.DefaultFrame("missing") != 1 {
		t.Fatalf("unexpected default frames")
	}
	if c.Contains("zz") {
		t.Fatalf("defaults must not add items")
	}
	if c.At(-1) != "" || c.At(3) != "" || c.First() != "a" {
		t.Fatalf("unexpected At/First")
	}
}

func TestProbe(t *testing.T) {
	dir := t.TempDir()
	rel := "assets/focal-stack-viewer/start/s/start.png"
	full := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(full)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 12, 7))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	broken := "assets/broken.jpg"
	if err := os.WriteFile(filepath.Join(dir, broken), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Probe(context.Background(), dir, []string{rel, "assets/missing.jpg", broken}, 2)
	if err != nil {
		t.Fatalf("Probe error: %v", err)
	}
	if !res[0].Exists || res[0].Width != 12 || res[0].Height != 7 || res[0].Format != "png" {
		t.Fatalf("unexpected result %+v", res[0])
	}
	if res[1].Exists || res[1].Err != nil {
		t.Fatalf("missing file should be reported without error: %+v", res[1])
	}
	if !res[2].Exists || res[2].Err == nil {
		t.Fatalf("broken file should exist with header error: %+v", res[2])
	}
	if m := Missing(res); len(m) != 1 || m[0] != "assets/missing.jpg" {
		t.Fatalf("unexpected missing list %v", m)
	}
}

func TestProbe_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Probe(ctx, t.TempDir(), []string{"a", "b"}, 1); err == nil {
		t.Fatalf("expected context error")
	}
}
