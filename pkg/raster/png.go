package raster

import (
	"image"
	"image/png"
	"io"
)

// encodePNG uses the standard encoder; golang.org/x/image ships decoders
// and scalers but no PNG writer.
func encodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	return enc.Encode(w, img)
}
