// Package domain defines the core business entities for vcardqr.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ContactRecord: The fields a user enters for one contact
//   - CardDocument: The vCard 3.0 text built from a ContactRecord
//   - EncodedSymbol: The QR raster encoding a CardDocument
//   - ImageFormat: The container an EncodedSymbol is exported in
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
