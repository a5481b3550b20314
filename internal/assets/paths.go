// Package assets templates image URLs from (item, method, frame) and
// checks which of them resolve on disk.
package assets

import (
	"fmt"
	"path"
	"regexp"
)

// Method keys of the focal-stack viewer.
const (
	MethodNAF  = "naf"
	MethodIP2P = "ip2p"
	MethodOurs = "ours"
	MethodGT   = "gt"
)

// Layout knows the directory conventions under an assets root.
type Layout struct {
	Root string
}

// NewLayout returns a layout rooted at root ("assets" when empty).
func NewLayout(root string) Layout {
	if root == "" {
		root = "assets"
	}
	return Layout{Root: root}
}

func (l Layout) datasetDir(scene string) string {
	return path.Join(l.Root, "dataset-sample", scene, "midsize", "undistorted", "RigCenter")
}

// DatasetFrame is the image of a dataset scene at a focal position.
func (l Layout) DatasetFrame(scene string, position int) string {
	return path.Join(l.datasetDir(scene), fmt.Sprintf("focal_position_%04d_frame_0000.jpg", position))
}

// DatasetThumbnail is the strip thumbnail of a dataset scene.
func (l Layout) DatasetThumbnail(scene string) string {
	return l.DatasetFrame(scene, 0)
}

// Dataset sample previews: the first SampleCount scenes at SamplePosition.
const (
	SampleCount    = 5
	SamplePosition = 4
)

// DatasetSamples lists the sample preview images for scenes.
func (l Layout) DatasetSamples(scenes []string) []string {
	n := min(len(scenes), SampleCount)
	out := make([]string, 0, n)
	for _, scene := range scenes[:n] {
		out = append(out, l.DatasetFrame(scene, SamplePosition))
	}
	return out
}

// FocalStart is the input image (and thumbnail) of a focal stack.
func (l Layout) FocalStart(stack string) string {
	return path.Join(l.Root, "focal-stack-viewer", "start", stack, "start.jpg")
}

// FocalFrame is one output frame of a method for a focal stack.
func (l Layout) FocalFrame(method, stack string, frame int) string {
	return path.Join(l.Root, "focal-stack-viewer", method, stack, fmt.Sprintf("frame_%d.jpg", frame))
}

var positionRe = regexp.MustCompile(`position_(\d+)`)

// PositionNumber extracts the digits after "position_" in a stack key, or
// "" when there are none.
func PositionNumber(stack string) string {
	m := positionRe.FindStringSubmatch(stack)
	if m == nil {
		return ""
	}
	return m[1]
}

// InputCaption is the caption under a stack's input image.
func InputCaption(stack string) string {
	n := PositionNumber(stack)
	if n == "" {
		return "Input"
	}
	return "Input Focal Position " + n
}
