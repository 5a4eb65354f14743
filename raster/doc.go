// Package raster draws QR Codes onto github.com/gogpu/gg contexts.
//
// It is the pixel counterpart of package pdf: the same qrpdf geometry is
// painted into an image, which is useful for previews and for checking PDF
// output against a reference bitmap.
package raster
