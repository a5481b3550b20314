package config

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AssetsRoot: "assets",
		Theme:      ThemeConfig{Name: "dark"},
		Cell:       CellConfig{Width: 8, Height: 16},
		Dataset: DatasetConfig{
			Scenes: []string{
				"FSK_20241026073527GMT-04:00",
				"FSK_20241026083022GMT-04:00",
				"FSK_20241026083156GMT-04:00",
				"FSK_20241117195226GMT-05:00",
				"FSK_20241124181123GMT-05:00",
				"FSK_20241214144113GMT-05:00",
				"FSK_20241214165044GMT-05:00",
				"FSK_20241215201929GMT-05:00",
				"FSK_20241217213904GMT-05:00",
				"FSK_20241219151355GMT-05:00",
			},
			MaxPosition: 8,
			IntervalMS:  500,
		},
		Focal: FocalConfig{
			Stacks: []string{
				"img_00_position_01", "img_01_position_02", "img_02_position_03", "img_04_position_08",
				"img_05_position_08", "img_06_position_01", "img_07_position_07", "img_08_position_09",
				"img_09_position_02", "img_10_position_09", "img_11_position_01", "img_12_position_09",
				"img_13_position_07", "img_14_position_08", "img_15_position_03", "img_16_position_08",
				"img_17_position_08", "img_18_position_04",
			},
			InitialFrames: map[string]int{
				"img_00_position_01": 3,
				"img_01_position_02": 2,
				"img_01_position_09": 5,
				"img_02_position_03": 4,
				"img_02_position_07": 3,
				"img_03_position_03": 6,
				"img_03_position_08": 2,
				"img_04_position_03": 1,
				"img_04_position_08": 3,
				"img_05_position_08": 4,
				"img_06_position_01": 2,
				"img_06_position_08": 5,
				"img_07_position_04": 3,
				"img_07_position_07": 2,
				"img_08_position_09": 6,
				"img_09_position_02": 3,
				"img_10_position_09": 4,
				"img_11_position_01": 2,
				"img_12_position_09": 5,
				"img_13_position_07": 3,
				"img_14_position_08": 2,
				"img_15_position_03": 4,
				"img_16_position_08": 1,
				"img_17_position_08": 3,
				"img_18_position_04": 2,
			},
			MinFrame:     1,
			MaxFrame:     9,
			DefaultFrame: 1,
			Methods: []Method{
				{Key: "naf", Label: "NAF"},
				{Key: "ip2p", Label: "InstructPix2Pix"},
			},
		},
		Zoom: ZoomConfig{
			Default:     3.0,
			Min:         1.5,
			Max:         8,
			Step:        0.5,
			LensBase:    200,
			PanelWidth:  200,
			PanelHeight: 200,
		},
		Scrollbar: ScrollbarConfig{
			MinThumb:      30,
			Step:          300,
			EndEpsilon:    5,
			HintThreshold: 10,
		},
	}
}
