// Package chart produces the line-chart configuration consumed by the
// external renderer: one (issue, villain count) point per timeline slot
// plus scale ranges and series colors.
package chart

import (
	"fmt"
	"hash/fnv"

	"github.com/montanaflynn/stats"

	"github.com/liammcnabb/spider-man-villain-viz/internal/dataset"
	"github.com/liammcnabb/spider-man-villain-viz/internal/util"
)

type Config struct {
	Type    string  `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string `json:"labels"`
	Datasets []Series `json:"datasets"`
}

type Series struct {
	Label           string  `json:"label"`
	Data            []int   `json:"data"`
	BorderColor     string  `json:"borderColor"`
	BackgroundColor string  `json:"backgroundColor"`
	Fill            bool    `json:"fill"`
	Tension         float64 `json:"tension"`
}

type Options struct {
	Scales Scales `json:"scales"`
}

type Scales struct {
	Y Axis `json:"y"`
}

type Axis struct {
	Min   int   `json:"min"`
	Max   int   `json:"max"`
	Ticks Ticks `json:"ticks"`
}

type Ticks struct {
	StepSize int `json:"stepSize"`
}

// palette holds (border, background) pairs; the background carries the
// alpha the renderer expects for area fills.
var palette = [][2]string{
	{"rgb(220, 38, 38)", "rgba(220, 38, 38, 0.2)"},
	{"rgb(37, 99, 235)", "rgba(37, 99, 235, 0.2)"},
	{"rgb(22, 163, 74)", "rgba(22, 163, 74, 0.2)"},
	{"rgb(217, 119, 6)", "rgba(217, 119, 6, 0.2)"},
	{"rgb(124, 58, 237)", "rgba(124, 58, 237, 0.2)"},
}

// Build maps the dataset timeline onto a chart config. The y scale always
// starts at zero and tops out at a clean boundary above the observed
// maximum so the line never touches the chart edge.
func Build(ds *dataset.Dataset) *Config {
	labels := make([]string, 0, len(ds.Timeline))
	points := make([]int, 0, len(ds.Timeline))
	counts := make([]float64, 0, len(ds.Timeline))

	for _, t := range ds.Timeline {
		labels = append(labels, fmt.Sprintf("#%d", t.Issue))
		points = append(points, t.VillainCount)
		counts = append(counts, float64(t.VillainCount))
	}

	maxCount := 0.0
	if len(counts) > 0 {
		if m, err := stats.Max(counts); err == nil {
			maxCount = m
		}
	}

	step := stepSize(int(maxCount))
	border, background := seriesColors(ds.Series)

	return &Config{
		Type: "line",
		Data: Data{
			Labels: labels,
			Datasets: []Series{{
				Label:           ds.Series + " villains per issue",
				Data:            points,
				BorderColor:     border,
				BackgroundColor: background,
				Fill:            true,
				Tension:         0.3,
			}},
		},
		Options: Options{
			Scales: Scales{
				Y: Axis{
					Min:   0,
					Max:   niceMax(int(maxCount), step),
					Ticks: Ticks{StepSize: step},
				},
			},
		},
	}
}

func stepSize(max int) int {
	switch {
	case max <= 5:
		return 1
	case max <= 10:
		return 2
	case max <= 25:
		return 5
	default:
		return 10
	}
}

// niceMax rounds up to the next step boundary strictly above max.
func niceMax(max, step int) int {
	return (max/step + 1) * step
}

// seriesColors picks a stable palette entry for a series title.
func seriesColors(series string) (string, string) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(series))
	c := palette[h.Sum32()%uint32(len(palette))]

	return c[0], c[1]
}

func (c *Config) Write(path string) error {
	return util.WriteJSON(path, c)
}
