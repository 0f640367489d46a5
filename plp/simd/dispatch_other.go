//go:build !amd64 && !arm64

package simd

func init() {
	// riscv64, wasm and the rest fall back to 16-byte scalar lanes.
	setScalarMode()
}
