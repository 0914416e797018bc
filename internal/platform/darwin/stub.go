//go:build !darwin || !cgo

package darwin
