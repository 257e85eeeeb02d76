package plot

import (
	"image/color"
	"math"
	"sort"

	"github.com/plotforge/plotforge/pkg/errors"
)

// Colormap maps a normalized value in [0, 1] to a color by linear
// interpolation between fixed anchor stops.
type Colormap struct {
	name  string
	stops []colorStop
}

type colorStop struct {
	t       float64
	r, g, b uint8
}

// anchors builds evenly spaced stops from a list of RGB triples.
func anchors(name string, rgbs ...[3]uint8) Colormap {
	stops := make([]colorStop, len(rgbs))
	for i, c := range rgbs {
		stops[i] = colorStop{
			t: float64(i) / float64(len(rgbs)-1),
			r: c[0], g: c[1], b: c[2],
		}
	}
	return Colormap{name: name, stops: stops}
}

var colormaps = map[string]Colormap{
	"viridis": anchors("viridis",
		[3]uint8{68, 1, 84}, [3]uint8{71, 44, 122}, [3]uint8{59, 81, 139},
		[3]uint8{44, 113, 142}, [3]uint8{33, 144, 141}, [3]uint8{39, 173, 129},
		[3]uint8{92, 200, 99}, [3]uint8{170, 220, 50}, [3]uint8{253, 231, 37}),
	"plasma": anchors("plasma",
		[3]uint8{13, 8, 135}, [3]uint8{84, 2, 163}, [3]uint8{139, 10, 165},
		[3]uint8{185, 50, 137}, [3]uint8{219, 92, 104}, [3]uint8{244, 136, 73},
		[3]uint8{254, 188, 43}, [3]uint8{240, 249, 33}),
	"inferno": anchors("inferno",
		[3]uint8{0, 0, 4}, [3]uint8{40, 11, 84}, [3]uint8{101, 21, 110},
		[3]uint8{159, 42, 99}, [3]uint8{212, 72, 66}, [3]uint8{245, 125, 21},
		[3]uint8{250, 193, 39}, [3]uint8{252, 255, 164}),
	"magma": anchors("magma",
		[3]uint8{0, 0, 4}, [3]uint8{28, 16, 68}, [3]uint8{79, 18, 123},
		[3]uint8{129, 37, 129}, [3]uint8{181, 54, 122}, [3]uint8{229, 80, 100},
		[3]uint8{251, 135, 97}, [3]uint8{254, 194, 135}, [3]uint8{252, 253, 191}),
	"gray": anchors("gray",
		[3]uint8{0, 0, 0}, [3]uint8{255, 255, 255}),
	"hot": anchors("hot",
		[3]uint8{10, 0, 0}, [3]uint8{230, 0, 0}, [3]uint8{255, 180, 0},
		[3]uint8{255, 255, 255}),
	"coolwarm": anchors("coolwarm",
		[3]uint8{59, 76, 192}, [3]uint8{221, 221, 221}, [3]uint8{180, 4, 38}),
}

// ColormapByName looks up a colormap by its conventional name.
func ColormapByName(name string) (Colormap, error) {
	cm, ok := colormaps[name]
	if !ok {
		return Colormap{}, errors.New(errors.ErrCodeInvalidColormap, "unknown colormap %q", name)
	}
	return cm, nil
}

// Name returns the colormap's registered name.
func (cm Colormap) Name() string { return cm.name }

// At returns the interpolated color for t in [0, 1]. Values outside the range
// are clamped.
func (cm Colormap) At(t float64) color.RGBA {
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))

	i := sort.Search(len(cm.stops), func(i int) bool { return cm.stops[i].t >= t })
	if i == 0 {
		s := cm.stops[0]
		return color.RGBA{s.r, s.g, s.b, 255}
	}
	lo, hi := cm.stops[i-1], cm.stops[i]

	f := (t - lo.t) / (hi.t - lo.t)
	return color.RGBA{
		R: lerp8(lo.r, hi.r, f),
		G: lerp8(lo.g, hi.g, f),
		B: lerp8(lo.b, hi.b, f),
		A: 255,
	}
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + f*(float64(b)-float64(a))))
}

// normalize maps v from [min, max] to [0, 1], collapsing degenerate ranges
// to the midpoint so constant-valued data still gets a color.
func normalize(v, min, max float64) float64 {
	if max == min {
		return 0.5
	}
	return (v - min) / (max - min)
}

// minMax returns the extrema of vs. It assumes vs is non-empty.
func minMax(vs []float64) (min, max float64) {
	min, max = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
