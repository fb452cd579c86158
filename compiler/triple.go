package compiler

import "runtime"

var triples = map[string]string{
	"linux/amd64":   "x86_64-unknown-linux-gnu",
	"linux/arm64":   "aarch64-unknown-linux-gnu",
	"linux/386":     "i386-unknown-linux-gnu",
	"linux/arm":     "armv7-unknown-linux-gnueabihf",
	"darwin/amd64":  "x86_64-apple-macosx10.13.0",
	"darwin/arm64":  "arm64-apple-macosx11.0.0",
	"freebsd/amd64": "x86_64-unknown-freebsd",
	"windows/amd64": "x86_64-pc-windows-msvc",
	"windows/arm64": "aarch64-pc-windows-msvc",
}

// TargetTriple maps a GOOS/GOARCH pair to an LLVM target triple. Unknown
// pairs return an empty string.
func TargetTriple(goos, goarch string) string {
	return triples[goos+"/"+goarch]
}

// HostTriple is the target triple of the running process.
func HostTriple() string {
	return TargetTriple(runtime.GOOS, runtime.GOARCH)
}
