//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the sponza walkthrough with configs/sponza.toml.
func (Run) Sponza() error {
	fmt.Println("Run sponza...")
	return run(true, "go", "run", ".", "-config", "configs/sponza.toml")
}
