//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mips64p32le || mipsle || ppc64le || riscv64 || wasm

package murmur2

const littleEndian = true
