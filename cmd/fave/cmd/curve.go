package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/fave/pkg/animation"
	"github.com/go-drift/fave/pkg/fave"
)

func init() {
	RegisterCommand(&Command{
		Name:  "curve",
		Short: "Print sampled elastic tween values",
		Long: `Print the elastic tween that drives the icon bounce, one sample per step.
The step is duration/fps, so a tween always yields about fps samples.

Each line holds the frame index, its time offset and the sampled value.

Flags:
  --from VALUE       Start value (default: 0)
  --to VALUE         End value (default: 1)
  --duration DUR     Tween duration, e.g. 1s or 750ms (default: 1s)
  --fps N            Samples spread across the duration, at most 1000 (default: 60)`,
		Usage: "fave curve [--from VALUE] [--to VALUE] [--duration DUR] [--fps N]",
		Run:   runCurve,
	})
}

type curveOptions struct {
	from, to float64
	duration time.Duration
	fps      float64
}

func runCurve(args []string) error {
	opts, err := parseCurveArgs(args)
	if err != nil {
		return err
	}
	return writeCurve(os.Stdout, opts)
}

func parseCurveArgs(args []string) (curveOptions, error) {
	opts := curveOptions{
		to:       1,
		duration: fave.BurstDuration,
		fps:      animation.DefaultFPS,
	}
	for i := 0; i < len(args); i++ {
		name, value, inline := strings.Cut(args[i], "=")
		if !inline {
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", name)
			}
			value = args[i+1]
			i++
		}
		var err error
		switch name {
		case "--from":
			opts.from, err = strconv.ParseFloat(value, 64)
		case "--to":
			opts.to, err = strconv.ParseFloat(value, 64)
		case "--duration":
			opts.duration, err = time.ParseDuration(value)
		case "--fps":
			opts.fps, err = parseFPS(value)
		default:
			return opts, fmt.Errorf("unknown flag %q", name)
		}
		if err != nil {
			return opts, fmt.Errorf("invalid %s %q: %w", name, value, err)
		}
	}
	return opts, nil
}

func writeCurve(w io.Writer, opts curveOptions) error {
	samples := animation.SampleTween(opts.from, opts.to, opts.duration, opts.fps)
	step := time.Duration(float64(opts.duration) / opts.fps)
	for i, v := range samples {
		if _, err := fmt.Fprintf(w, "%d\t%v\t%.6f\n", i, time.Duration(i)*step, v); err != nil {
			return err
		}
	}
	return nil
}
