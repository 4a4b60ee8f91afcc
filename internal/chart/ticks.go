package chart

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var tickPrinter = message.NewPrinter(language.English)

// Tick is a labelled axis position.
type Tick struct {
	Value float64
	Label string
}

// NiceTicks returns about n evenly spaced ticks covering [lo, hi], rounded
// to 1, 2 or 5 times a power of ten.
func NiceTicks(lo, hi float64, n int) []Tick {
	if n < 2 {
		n = 2
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		hi = lo + 1
	}

	step := niceNum((hi-lo)/float64(n-1), true)
	start := math.Floor(lo/step) * step
	end := math.Ceil(hi/step) * step

	var ticks []Tick
	for v := start; v <= end+step/2; v += step {
		// Snap values like 0.30000000000000004.
		v = math.Round(v/step) * step
		ticks = append(ticks, Tick{Value: v, Label: FormatTick(v, step)})
	}
	return ticks
}

// niceNum rounds x to a "nice" number: 1, 2, 5 or 10 times a power of ten.
func niceNum(x float64, round bool) float64 {
	if x <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	switch {
	case round && f < 1.5:
		nf = 1
	case round && f < 3:
		nf = 2
	case round && f < 7:
		nf = 5
	case round:
		nf = 10
	case f <= 1:
		nf = 1
	case f <= 2:
		nf = 2
	case f <= 5:
		nf = 5
	default:
		nf = 10
	}
	return nf * math.Pow(10, exp)
}

// FormatTick formats v with thousands separators and as many decimals as
// the tick step needs.
func FormatTick(v, step float64) string {
	decimals := 0
	if step > 0 && step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	if v == 0 {
		v = 0 // drop negative zero
	}
	return tickPrinter.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// FormatValue formats a data value for labels and legends.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return tickPrinter.Sprintf("%.0f", v)
	}
	return tickPrinter.Sprintf("%.2f", v)
}
