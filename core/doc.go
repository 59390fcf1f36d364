// Package core defines the domain model shared by every STIX object in
// stixcore.
//
// # Architecture Overview
//
// The core package provides:
//   - The STIX identifier scheme (type--uuid) with validation helpers
//   - CommonProperties, the property block embedded by every object
//   - The Object capability contract consumed by the bundle package
//   - The versioning policy that keeps object identity stable across versions
//   - Typed errors for identifier, reference, and versioning failures
//
// # Design Principles
//
//  1. Pure functions with no hidden global state; known-type sets are
//     caller-supplied via TypeRegistry rather than process-wide registries
//  2. Typed errors with proper wrapping, never panics on malformed input
//  3. The bundle layer depends only on the Object interface, never on the
//     concrete object list, so new object types need no graph changes
package core
