//go:build cube4

package geometry

// Default is the layout compiled into the binary.
type Default = Cube4
