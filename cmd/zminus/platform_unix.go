//go:build unix

package main

import (
	"bytes"
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// platformVersion describes the operating system for the version command.
func platformVersion() string {
	var uname unix.Utsname
	if unix.Uname(&uname) != nil {
		// Nothing else to try.
		return runtime.GOOS + "/" + runtime.GOARCH
	}
	s, r := uname.Sysname[:], uname.Release[:]
	return fmt.Sprintf("%s/%s %s %s", runtime.GOOS, runtime.GOARCH, bytes.Trim(s, "\x00"), bytes.Trim(r, "\x00"))
}
