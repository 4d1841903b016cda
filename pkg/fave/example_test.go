package fave_test

import (
	"fmt"

	"github.com/go-drift/fave/pkg/fave"
	"github.com/go-drift/fave/pkg/graphics"
	favetest "github.com/go-drift/fave/pkg/testing"
)

// This example shows where the sparks of a five-spark burst land.
func ExampleLayoutSparks() {
	sparks := fave.LayoutSparks(fave.SparkLayout{Count: 5, InnerRadius: 52, OuterRadius: 71.5})
	for _, s := range sparks {
		fmt.Printf("%.0f ", s.Angle)
	}
	fmt.Println()

	// Output:
	// 10 82 154 226 298
}

// This example shows a non-animated restore followed by a tap.
func ExampleButton_SetSelected() {
	host := &favetest.RecordingHost{}
	button := fave.NewButton(
		fave.WithImages(favetest.Icon(), favetest.Icon()),
		fave.WithSize(graphics.Size{Width: 64, Height: 64}),
		fave.WithHost(host),
		fave.WithScheduler(favetest.NewFakeScheduler()),
	)

	button.SetSelected(true, false)
	fmt.Println("selected:", button.Selected(), "bursts:", host.Len())

	button.Toggle()
	button.Toggle()
	fmt.Println("selected:", button.Selected(), "bursts:", host.Len())

	// Output:
	// selected: true bursts: 0
	// selected: true bursts: 1
}
