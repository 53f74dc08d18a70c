package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/beatline/audio"
	"github.com/lixenwraith/beatline/chart"
	"github.com/lixenwraith/beatline/engine"
	"github.com/lixenwraith/beatline/event"
	"github.com/lixenwraith/beatline/scroll"
	"github.com/lixenwraith/beatline/status"
)

var (
	minutes   = flag.Int("minutes", 60, "Generated chart length in minutes")
	sections  = flag.Int("sections", 64, "Tempo sections spread across the chart")
	frames    = flag.Int("frames", 200_000, "Reconciliation frames to run")
	stepMs    = flag.Int64("step", 16, "Clock advance per frame in ms")
	threshold = flag.Float64("threshold", 2000, "Render window half-width in track units")
	prewarm   = flag.Int("prewarm", 64, "Sprites constructed before the first frame")
)

func main() {
	flag.Parse()

	crt := syntheticChart(int64(*minutes)*60_000, *sections)
	mapper := scroll.NewVelocityMapper(1.0, crt.Velocities)

	board := status.NewBoard()
	queue := event.NewQueue()
	clock := audio.NewManualClock()
	fac := &engine.CountingFactory{}

	buildStart := time.Now()
	field := engine.NewLineField(engine.FieldConfig{
		Chart:           crt,
		Mapper:          mapper,
		RenderThreshold: *threshold,
		Sprites:         fac,
		Prewarm:         *prewarm,
		Events:          queue,
		Board:           board,
	})
	buildTime := time.Since(buildStart)

	session := engine.NewSession(engine.SessionConfig{
		Field:  field,
		Source: clock,
		Mapper: mapper,
		Board:  board,
	})

	// Stats
	var stepTotal, stepWorst time.Duration
	var shown, hidden int64
	peakVisible := 0
	conservationBreaks := 0
	windowBreaks := 0

	start := time.Now()
	for i := 0; i < *frames; i++ {
		t0 := time.Now()
		frame := session.Step()
		d := time.Since(t0)
		stepTotal += d
		if d > stepWorst {
			stepWorst = d
		}

		if v := field.Visible(); v > peakVisible {
			peakVisible = v
		}
		st := field.Stats()
		if st.Visible+st.Free != st.Built {
			conservationBreaks++
		}

		for _, ev := range queue.Consume() {
			if p, ok := ev.Payload.(*event.LineBatchPayload); ok {
				switch ev.Type {
				case event.LinesShown:
					shown += int64(len(p.Lines))
					// Shown lines must sit inside this frame's window
					for _, id := range p.Lines {
						if delta := field.Line(id).Track - frame.Track; delta > *threshold || delta < -*threshold {
							windowBreaks++
						}
					}
				case event.LinesHidden:
					hidden += int64(len(p.Lines))
				}
				event.ReleaseLineBatch(p)
			}
		}

		// Sweep the window across the whole chart repeatedly
		next := clock.Position() + *stepMs
		if next >= crt.Length {
			next = 0
		}
		clock.Set(next)
	}
	elapsed := time.Since(start)

	field.Teardown()

	fmt.Printf("Field Soak Results:\n")
	fmt.Printf("  Chart:         %d sections, %d lines, %v\n",
		len(crt.Sections), field.Len(), time.Duration(crt.Length)*time.Millisecond)
	fmt.Printf("  Build:         %v\n", buildTime)
	fmt.Printf("  Frames:        %d (clock step %dms)\n", *frames, *stepMs)
	fmt.Printf("  Total Time:    %v\n", elapsed)
	fmt.Printf("  Avg Step:      %v\n", stepTotal/time.Duration(*frames))
	fmt.Printf("  Worst Step:    %v\n", stepWorst)
	fmt.Printf("  Steps/sec:     %.0f\n", float64(*frames)/elapsed.Seconds())
	fmt.Printf("  Peak Visible:  %d\n", peakVisible)
	fmt.Printf("  Sprites Built: %d\n", fac.Constructed)
	fmt.Printf("  Shown/Hidden:  %d / %d\n", shown, hidden)

	fmt.Printf("\nBoard:\n")
	board.Counters.Range(func(name string, v *atomic.Int64) {
		fmt.Printf("  %-18s %d\n", name, v.Load())
	})
	board.Gauges.Range(func(name string, v *status.AtomicFloat) {
		fmt.Printf("  %-18s %.1f\n", name, v.Get())
	})
	board.Labels.Range(func(name string, v *status.AtomicString) {
		fmt.Printf("  %-18s %s\n", name, v.Load())
	})

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("\nMemory:\n")
	fmt.Printf("  Total Alloc:  %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", m.Mallocs)

	if conservationBreaks > 0 || windowBreaks > 0 {
		fmt.Printf("\nINVARIANT BREAKS: conservation %d, window %d\n", conservationBreaks, windowBreaks)
		os.Exit(1)
	}
}

// syntheticChart spreads tempo sections and velocity ramps evenly across the
// length so the soak crosses bpm changes, meter changes, hidden spans and SV
// steps on every sweep
func syntheticChart(length int64, count int) *chart.Chart {
	if count < 1 {
		count = 1
	}
	bpms := []float64{96, 120, 150, 174, 200}
	sigs := []int{4, 3, 4, 7, 4}

	c := &chart.Chart{Title: "synthetic soak", Length: length}
	span := length / int64(count)
	if span < 1 {
		span = 1
	}
	for i := 0; i < count; i++ {
		c.Sections = append(c.Sections, chart.TimingSection{
			Start:     int64(i) * span,
			BPM:       bpms[i%len(bpms)],
			Signature: sigs[i%len(sigs)],
			Hidden:    i%13 == 12,
		})
	}
	for t := int64(0); t < length; t += span * 4 {
		mult := 1.0 + 0.25*float64((t/(span*4))%4)
		c.Velocities = append(c.Velocities, chart.Velocity{Time: t, Multiplier: mult})
	}
	return c
}
