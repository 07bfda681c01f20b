// Package imaging encodes and decodes rasters in the supported container
// formats: PNG and JPEG from the standard library, BMP from
// golang.org/x/image/bmp.
package imaging
