// Package icukit provides Unicode text utilities for tests.
package icukit

// Version is the library version.
const Version = "0.3.0"
