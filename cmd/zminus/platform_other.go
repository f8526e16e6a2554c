//go:build !unix

package main

import "runtime"

// platformVersion describes the operating system for the version command.
func platformVersion() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
