// Command densityreport sweeps depth_hint across a batch of encryptions
// and renders sigma_density as a line chart, the same "sweep a parameter,
// collect a metric series, plot it" shape cmd/analysis/main.go uses for
// its coefficient histograms. This is a caller of the encryption core,
// not a surface of it: the core packages themselves take no flags, read
// no env vars, and define no file format.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"fhecore/enc"
	"fhecore/fp"
	"fhecore/params"
	"fhecore/rng"
)

func defaultPrm() *params.Prm {
	g := fp.FromUint64(5)
	prm := &params.Prm{
		B:                256,
		MBits:            128,
		EdgeBudget:       4096,
		NoiseEntropyBits: 96,
		DepthSlopeBits:   12,
		Tuple2Fraction:   0.6,
		CanonTag:         0x6465_6e73_6974_7931,
	}
	prm.PowG = params.BuildPowG(g, prm.B)
	return prm
}

func newDensityLineChart(depths []int32, densities []float64) *charts.Line {
	xLabels := make([]string, len(depths))
	data := make([]opts.LineData, len(depths))
	for i, d := range depths {
		xLabels[i] = fmt.Sprintf("%d", d)
		data[i] = opts.LineData{Value: densities[i]}
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "sigma_density by depth_hint"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "sigma_density sweep", Width: "1000px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xLabels).
		AddSeries("sigma_density", data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return line
}

func main() {
	maxDepth := flag.Int("max-depth", 8, "largest depth_hint to sweep")
	runsPerDepth := flag.Int("runs", 20, "encryptions averaged per depth_hint")
	outDir := flag.String("out", "density_reports", "output directory for the HTML report")
	seed := flag.Int64("seed", 1, "seed for the deterministic sampler")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	prm := defaultPrm()
	pk := &params.PublicKey{Prm: prm, ID: []byte("densityreport")}
	sk := &params.SecretKey{Key: []byte("densityreport-key")}
	src := rng.NewSeeded(*seed)

	var depths []int32
	var densities []float64
	for d := int32(0); d <= int32(*maxDepth); d++ {
		var sum float64
		for i := 0; i < *runsPerDepth; i++ {
			c := enc.EncValueDepth(pk, sk, uint64(i), d, src)
			sum += enc.SigmaDensity(pk, c)
		}
		depths = append(depths, d)
		densities = append(densities, sum/float64(*runsPerDepth))
		log.Printf("[densityreport] depth_hint=%d mean_sigma_density=%.4f", d, densities[len(densities)-1])
	}

	chart := newDensityLineChart(depths, densities)
	ts := time.Now().Format("20060102_150405")
	htmlPath := filepath.Join(*outDir, fmt.Sprintf("sigma_density_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := chart.Render(f); err != nil {
		log.Fatalf("render: %v", err)
	}
	log.Printf("[densityreport] wrote %s", htmlPath)
}
