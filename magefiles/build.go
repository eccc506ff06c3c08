//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Tidies the module and compiles the sponza demo into bin/.
func (Build) Demo() error {
	if err := goTidy(); err != nil {
		return err
	}
	return run(true, "go", "build", "-o", "bin/sponza", ".")
}

// Runs every package test.
func Test() error {
	return run(true, "go", "test", "./...")
}
