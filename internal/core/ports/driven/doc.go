// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SymbolEncoder: Turns a text payload into a QR raster
//   - ImageEncoder: Writes a raster in a container format (PNG, JPEG, BMP)
//   - Sink: Opens export destinations for writing
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - SymbolDecoder: Reads a QR payload back from an image. Without it,
//     scanning and export verification are disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
