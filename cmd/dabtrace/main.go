// Command dabtrace strokes a synthetic wavy path with the spacing engine,
// renders the dabs it places and reports how evenly they are spread.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/spacing"
	"github.com/gogpu/spacing/internal/dabimage"
	"github.com/gogpu/spacing/internal/strokestat"
)

type config struct {
	width, height int
	output        string

	size     float64 // dab diameter at full pressure
	coeff    float64 // spacing as a fraction of the dab size
	ratio    float64 // dab height / width
	rotation float64 // degrees
	flipped  bool

	timed    bool
	interval float64

	lod     int
	samples int
	dt      float64 // time between input samples
}

type result struct {
	dabs    int
	tracked float64 // tracker distance at full resolution
	summary strokestat.Summary
}

func main() {
	var cfg config
	verbose := flag.Bool("v", false, "log debug output")
	flag.IntVar(&cfg.width, "width", 800, "image width")
	flag.IntVar(&cfg.height, "height", 400, "image height")
	flag.StringVar(&cfg.output, "output", "dabs.png", "output file")
	flag.Float64Var(&cfg.size, "size", 24, "dab diameter at full pressure")
	flag.Float64Var(&cfg.coeff, "spacing", 0.25, "spacing as a fraction of the dab size")
	flag.Float64Var(&cfg.ratio, "ratio", 1, "dab height to width ratio; 1 uses isotropic spacing")
	flag.Float64Var(&cfg.rotation, "rotation", 0, "dab rotation in degrees")
	flag.BoolVar(&cfg.flipped, "flipped", false, "treat the canvas as mirrored")
	flag.BoolVar(&cfg.timed, "timed", false, "enable timed spacing")
	flag.Float64Var(&cfg.interval, "interval", 40, "timed spacing interval")
	flag.IntVar(&cfg.lod, "lod", 0, "level of detail to render at")
	flag.IntVar(&cfg.samples, "samples", 60, "number of input samples")
	flag.Float64Var(&cfg.dt, "dt", 8, "time between input samples")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	spacing.SetLogger(logger)

	f, err := os.Create(cfg.output)
	if err != nil {
		logger.Error("create output", "err", err)
		os.Exit(1)
	}
	res, err := run(cfg, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("render stroke", "err", err)
		os.Exit(1)
	}

	printSummary(os.Stdout, res)
	logger.Info("stroke saved", "output", cfg.output, "width", cfg.width, "height", cfg.height)
}

// dabCollector is the brush engine of the demo: it turns every painted
// sample into a dab and reports the spacing for the next one.
type dabCollector struct {
	cfg    config
	lod    spacing.LodTransform
	canvas *dabimage.Canvas
	xs, ys []float64 // dab centers at full resolution
}

func (c *dabCollector) PaintDab(pi spacing.PaintInfo) spacing.Spacing {
	scale := spacing.LodToScale(c.lod.LevelOfDetail())
	w := c.cfg.size * (0.3 + 0.7*pi.Pressure()) * scale
	h := w * c.cfg.ratio
	rotation := c.cfg.rotation * math.Pi / 180

	p := pi.Pos()
	c.canvas.Stamp(dabimage.Dab{
		X: p.X, Y: p.Y,
		RX: w / 2, RY: h / 2,
		Angle:   rotation,
		Opacity: 0.35,
	})
	full := c.lod.MapInverted(p)
	c.xs = append(c.xs, full.X)
	c.ys = append(c.ys, full.Y)

	return spacing.EffectiveSpacing(spacing.SpacingParams{
		DabWidth:             w,
		DabHeight:            h,
		Isotropic:            c.cfg.ratio == 1,
		Rotation:             rotation,
		AxesFlipped:          c.cfg.flipped,
		Coeff:                c.cfg.coeff,
		LodScale:             scale,
		TimedSpacingEnabled:  c.cfg.timed,
		TimedSpacingInterval: c.cfg.interval,
	})
}

// samples generates a wave across the canvas with varying pressure.
func samples(cfg config) []spacing.PaintInfo {
	n := max(cfg.samples, 2)
	w, h := float64(cfg.width), float64(cfg.height)
	margin := cfg.size
	amp := h / 4

	out := make([]spacing.PaintInfo, n)
	for i := range out {
		u := float64(i) / float64(n-1)
		pos := spacing.Pt(margin+u*(w-2*margin), h/2+amp*math.Sin(u*3*math.Pi))
		pressure := 0.5 + 0.5*math.Sin(u*math.Pi)
		out[i] = spacing.NewPaintInfo(pos, float64(i)*cfg.dt, pressure)
	}
	return out
}

func run(cfg config, out io.Writer) (result, error) {
	if cfg.width <= 0 || cfg.height <= 0 {
		return result{}, fmt.Errorf("dabtrace: invalid canvas size %dx%d", cfg.width, cfg.height)
	}
	if cfg.coeff <= 0 || cfg.size <= 0 {
		return result{}, fmt.Errorf("dabtrace: spacing and size must be positive")
	}

	lod := spacing.NewLodTransform(cfg.lod)
	scale := spacing.LodToScale(lod.LevelOfDetail())
	op := &dabCollector{
		cfg:    cfg,
		lod:    lod,
		canvas: dabimage.New(int(math.Ceil(float64(cfg.width)*scale)), int(math.Ceil(float64(cfg.height)*scale))),
	}

	pts := samples(cfg)
	full := spacing.NewTrackerAt(pts[0].Pos(), pts[0].Time())
	d := full.CloneForLod(lod.LevelOfDetail())

	at := func(pi spacing.PaintInfo) spacing.PaintInfo {
		return spacing.NewPaintInfo(lod.Map(pi.Pos()), pi.Time(), pi.Pressure())
	}

	prev := at(pts[0])
	spacing.PaintAt(d, prev, op)
	for _, p := range pts[1:] {
		next := at(p)
		spacing.PaintLine(d, prev, next, op)
		prev = next
	}

	if err := op.canvas.WritePNG(out, color.RGBA{R: 0x20, G: 0x30, B: 0x80, A: 0xff}, color.White); err != nil {
		return result{}, fmt.Errorf("dabtrace: encode png: %w", err)
	}

	return result{
		dabs:    len(op.xs),
		tracked: d.ScalarDistanceApprox() / scale,
		summary: strokestat.Summarize(op.xs, op.ys),
	}, nil
}

func printSummary(w io.Writer, res result) {
	p := message.NewPrinter(language.English)
	s := res.summary
	p.Fprintf(w, "%d dabs over %.1f px (tracker %.1f px)\n", res.dabs, s.Length, res.tracked)
	p.Fprintf(w, "gap mean %.2f px, std dev %.2f px, min %.2f px, max %.2f px, cv %.3f\n",
		s.MeanGap, s.StdDevGap, s.MinGap, s.MaxGap, s.CV)
}
