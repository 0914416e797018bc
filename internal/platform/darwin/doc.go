//go:build darwin

// Package darwin provides macOS platform support using the CoreGraphics
// and Accessibility APIs. All functionality requires CGo; on other
// platforms the package compiles as an empty stub and no provider is
// registered.
package darwin
