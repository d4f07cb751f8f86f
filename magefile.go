//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "quintus"
	mainPkg = "./cmd/quintus"
)

// Default target to run when none is specified
var Default = Build

// Build compiles the quintus binary
func Build() error {
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	ldflags := fmt.Sprintf("-X codeberg.org/snonux/quintus/internal.Version=%s", version)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binary, mainPkg)
}

// Test runs all unit tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install builds and copies the binary to $GOPATH/bin
func Install() error {
	mg.Deps(Build)

	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	dest := filepath.Join(gopath, "bin", binary)
	if err := sh.Copy(dest, binary); err != nil {
		return err
	}
	return os.Chmod(dest, 0755)
}

// Clean removes the built binary
func Clean() error {
	return sh.Rm(binary)
}
