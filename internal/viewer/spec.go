package viewer

import (
	"time"

	"github.com/interpretive-systems/focalview/internal/assets"
	"github.com/interpretive-systems/focalview/internal/config"
)

// Instance names.
const (
	DatasetName = "dataset"
	FocalName   = "focal"
)

// Slot IDs. SlotMain is the single dataset image; the rest are focal-stack slots.
const (
	SlotInput  = "input"
	SlotMethod = "method"
	SlotOurs   = "ours"
	SlotGT     = "gt"
	SlotMain   = "image"
)

// Selection is the current item, frame and comparison method.
type Selection struct {
	Item   string
	Frame  int
	Method string
}

// SlotSpec describes one displayed source image.
type SlotSpec struct {
	ID    string
	Label string
	// MethodLabel makes the slot take the label of the current method.
	MethodLabel bool
	URL         func(sel Selection) string
}

// Spec parametrizes a viewer instance.
type Spec struct {
	Name     string
	Title    string
	Catalog  *assets.Catalog
	MinFrame int
	MaxFrame int
	Slots    []SlotSpec
	Methods  []config.Method

	Thumbnail func(item string) string
	Caption   func(sel Selection) string

	// Samples are fixed preview images shown outside the strip.
	Samples []string

	// Autoplay enables the play/pause state machine.
	Autoplay     bool
	StartPlaying bool
	Interval     time.Duration

	// ResetFrameOnSelect sets the frame to MinFrame on selection instead of
	// the item's default frame.
	ResetFrameOnSelect bool
}

// DatasetSpec builds the dataset viewer: one image, focal positions
// 0..max, auto-play.
func DatasetSpec(cfg config.Config) Spec {
	layout := assets.NewLayout(cfg.AssetsRoot)
	return Spec{
		Name:     DatasetName,
		Title:    "Dataset",
		Catalog:  assets.NewCatalog(cfg.Dataset.Scenes, nil, 0),
		MinFrame: 0,
		MaxFrame: cfg.Dataset.MaxPosition,
		Slots: []SlotSpec{{
			ID:    SlotMain,
			Label: "Focal position",
			URL: func(sel Selection) string {
				return layout.DatasetFrame(sel.Item, sel.Frame)
			},
		}},
		Thumbnail: layout.DatasetThumbnail,
		Caption: func(sel Selection) string {
			return sel.Item
		},
		Samples:            layout.DatasetSamples(cfg.Dataset.Scenes),
		Autoplay:           true,
		StartPlaying:       cfg.Dataset.AutoplayEnabled(),
		Interval:           time.Duration(cfg.Dataset.IntervalMS) * time.Millisecond,
		ResetFrameOnSelect: true,
	}
}

// FocalSpec builds the focal-stack viewer: input, comparison method, ours
// and ground truth, aligned.
func FocalSpec(cfg config.Config) Spec {
	layout := assets.NewLayout(cfg.AssetsRoot)
	return Spec{
		Name:     FocalName,
		Title:    "Focal Stack",
		Catalog:  assets.NewCatalog(cfg.Focal.Stacks, cfg.Focal.InitialFrames, cfg.Focal.DefaultFrame),
		MinFrame: cfg.Focal.MinFrame,
		MaxFrame: cfg.Focal.MaxFrame,
		Methods:  cfg.Focal.Methods,
		Slots: []SlotSpec{
			{ID: SlotInput, Label: "Input", URL: func(sel Selection) string {
				return layout.FocalStart(sel.Item)
			}},
			{ID: SlotMethod, MethodLabel: true, URL: func(sel Selection) string {
				return layout.FocalFrame(sel.Method, sel.Item, sel.Frame)
			}},
			{ID: SlotOurs, Label: "Ours", URL: func(sel Selection) string {
				return layout.FocalFrame(assets.MethodOurs, sel.Item, sel.Frame)
			}},
			{ID: SlotGT, Label: "GT", URL: func(sel Selection) string {
				return layout.FocalFrame(assets.MethodGT, sel.Item, sel.Frame)
			}},
		},
		Thumbnail: layout.FocalStart,
		Caption: func(sel Selection) string {
			return assets.InputCaption(sel.Item)
		},
	}
}

// AllPaths lists every URL the viewer can reference: samples, thumbnails
// and every slot for every item, frame and method.
func (s Spec) AllPaths() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	for _, p := range s.Samples {
		add(p)
	}
	methods := s.Methods
	if len(methods) == 0 {
		methods = []config.Method{{}}
	}
	for _, item := range s.Catalog.Keys() {
		if s.Thumbnail != nil {
			add(s.Thumbnail(item))
		}
		for f := s.MinFrame; f <= s.MaxFrame; f++ {
			for _, m := range methods {
				sel := Selection{Item: item, Frame: f, Method: m.Key}
				for _, slot := range s.Slots {
					add(slot.URL(sel))
				}
			}
		}
	}
	return out
}
