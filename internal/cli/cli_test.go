package cli

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/interpretive-systems/focalview/internal/assets"
	"github.com/interpretive-systems/focalview/internal/config"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	// Never pick up a config file from the working directory.
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := root.Execute()
	return out.String(), err
}

func TestPaths_Dataset(t *testing.T) {
	scene := config.Default().Dataset.Scenes[0]
	out, err := runCmd(t, "paths", "dataset", scene, "4")
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	for _, want := range []string{
		"# " + scene + "  frame 4",
		"thumbnail\tassets/dataset-sample/" + scene,
		"focal_position_0004_frame_0000.jpg",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "sample\t"); n != 5 {
		t.Fatalf("expected 5 sample lines, got %d:\n%s", n, out)
	}
	last := config.Default().Dataset.Scenes[4]
	if !strings.Contains(out, "sample\tassets/dataset-sample/"+last+"/midsize/undistorted/RigCenter/focal_position_0004_frame_0000.jpg") {
		t.Fatalf("missing sample for %s:\n%s", last, out)
	}
}

func TestPaths_FocalMethod(t *testing.T) {
	out, err := runCmd(t, "paths", "focal", "img_02_position_03", "--method", "ip2p")
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	for _, want := range []string{
		"# Input Focal Position 03  frame 4",
		"Input\tassets/focal-stack-viewer/start/img_02_position_03/start.jpg",
		"InstructPix2Pix\tassets/focal-stack-viewer/ip2p/img_02_position_03/frame_4.jpg",
		"GT\tassets/focal-stack-viewer/gt/img_02_position_03/frame_4.jpg",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestPaths_Errors(t *testing.T) {
	if _, err := runCmd(t, "paths", "gallery", "x"); err == nil || !strings.Contains(err.Error(), "unknown viewer") {
		t.Fatalf("expected unknown viewer error, got %v", err)
	}
	if _, err := runCmd(t, "paths", "focal", "img_00_position_01", "seven"); err == nil {
		t.Fatalf("expected frame parse error")
	}
	if _, err := runCmd(t, "paths", "focal", "img_00_position_01", "--method", "bogus"); err == nil {
		t.Fatalf("expected unknown method error")
	}
}

func TestProbe_CountsPresentAssets(t *testing.T) {
	root := t.TempDir()
	scene := config.Default().Dataset.Scenes[0]
	p := filepath.FromSlash(assets.NewLayout(root).DatasetFrame(scene, 0))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 3))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out, err := runCmd(t, "probe", "dataset", "--assets", root, "--verbose")
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if !strings.Contains(out, "dataset: 1/90 present") || !strings.Contains(out, "png 4x3") {
		t.Fatalf("unexpected probe output:\n%s", out)
	}

	if _, err := runCmd(t, "probe", "dataset", "--assets", root, "--strict"); err == nil || !strings.Contains(err.Error(), "89 assets missing") {
		t.Fatalf("strict probe should fail, got %v", err)
	}
}

func TestPaths_UnknownStackFallsBack(t *testing.T) {
	out, err := runCmd(t, "paths", "focal", "img_99_position_05")
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	if !strings.Contains(out, "not in the focal catalog") || !strings.Contains(out, "# Input Focal Position 05  frame 1") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
