package ui

import "testing"

func TestComputeFrame_RejectsUndersizedTerminals(t *testing.T) {
	cases := []struct {
		name          string
		height, width int
	}{
		{"short", 23, 80},
		{"narrow", 30, 39},
		{"both", 10, 20},
		{"zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := computeFrame(tc.height, tc.width); ok {
				t.Fatalf("computeFrame(%d, %d) ok, want too-small", tc.height, tc.width)
			}
		})
	}
}

func TestComputeFrame_CentresTheFrame(t *testing.T) {
	cases := []struct {
		name          string
		height, width int
		wantY, wantX  int
	}{
		{"exact_fit", 24, 40, 0, 0},
		{"classic_terminal", 24, 80, 0, 20},
		{"tall_and_wide", 30, 100, 3, 30},
		{"odd_slack_floors", 25, 41, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			geom, ok := computeFrame(tc.height, tc.width)
			if !ok {
				t.Fatalf("computeFrame(%d, %d) too-small, want ok", tc.height, tc.width)
			}
			if geom.OffsetY != tc.wantY || geom.OffsetX != tc.wantX {
				t.Fatalf("offsets = (%d, %d), want (%d, %d)", geom.OffsetY, geom.OffsetX, tc.wantY, tc.wantX)
			}
		})
	}
}

func TestComputeFrame_NeverExceedsTerminal(t *testing.T) {
	for height := FrameHeight; height < FrameHeight+20; height++ {
		for width := FrameWidth; width < FrameWidth+60; width += 7 {
			geom, ok := computeFrame(height, width)
			if !ok {
				t.Fatalf("computeFrame(%d, %d) too-small, want ok", height, width)
			}
			if geom.OffsetY+FrameHeight > height {
				t.Fatalf("frame bottom %d exceeds height %d", geom.OffsetY+FrameHeight, height)
			}
			if geom.OffsetX+FrameWidth > width {
				t.Fatalf("frame right %d exceeds width %d", geom.OffsetX+FrameWidth, width)
			}
		}
	}
}
