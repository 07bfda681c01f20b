// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. Image codecs, QR libraries and the
// filesystem are only reached through driven ports.
package services
