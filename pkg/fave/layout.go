package fave

// sparkAngleOffset rotates the whole spark ring for visual balance.
const sparkAngleOffset = 10.0

// Dot radii as fractions of the button width.
var dotRadiusFactors = [2]float64{0.0633, 0.04}

// DotRadiiFor returns the first and second dot radius for a button width.
func DotRadiiFor(width float64) [2]float64 {
	return [2]float64{width * dotRadiusFactors[0], width * dotRadiusFactors[1]}
}

// SparkLayout parameterizes LayoutSparks.
type SparkLayout struct {
	Count int
	// Step is the angle between neighbouring sparks in degrees.
	// Zero means 360/Count.
	Step        float64
	InnerRadius float64
	OuterRadius float64
	DotRadii    [2]float64
	// Colors, when non-empty, colors spark i with Colors[i%len(Colors)].
	Colors []DotColors
	// Defaults colors every spark when Colors is empty.
	Defaults DotColors
}

// LayoutSparks places Count sparks around the circle. Spark i sits at
// Step*i + 10 degrees. The returned sparks carry their ignite timing.
func LayoutSparks(l SparkLayout) []Spark {
	if l.Count < 1 {
		return nil
	}
	step := l.Step
	if step == 0 {
		step = 360.0 / float64(l.Count)
	}

	sparks := make([]Spark, l.Count)
	for i := range sparks {
		sparks[i] = Spark{
			Index:       i,
			Angle:       step*float64(i) + sparkAngleOffset,
			InnerRadius: l.InnerRadius,
			OuterRadius: l.OuterRadius,
			DotRadii:    l.DotRadii,
			Colors:      dotColorsAt(l.Colors, i, l.Defaults),
		}
		sparks[i].schedule()
	}
	return sparks
}

func dotColorsAt(colors []DotColors, i int, fallback DotColors) DotColors {
	if len(colors) == 0 {
		return fallback
	}
	return colors[i%len(colors)]
}
