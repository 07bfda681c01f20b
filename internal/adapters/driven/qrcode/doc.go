// Package qrcode adapts QR libraries to the symbol ports.
//
// Encoder renders payloads with github.com/skip2/go-qrcode. Decoder reads
// them back with github.com/makiuchi-d/gozxing.
package qrcode
