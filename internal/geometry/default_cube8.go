//go:build !cube4

package geometry

// Default is the layout compiled into the binary. Build with -tags cube4 for the
// small cube.
type Default = Cube8
