//go:build mage

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/mg"
)

// run executes command with args. Output goes to the terminal when stream is
// set or mage runs verbose, otherwise it is printed only if the command fails.
func run(stream bool, command string, args ...string) error {
	fmt.Printf("Executing: %s %s\n", command, strings.Join(args, " "))
	cmd := exec.Command(command, args...)

	var out bytes.Buffer
	if stream || mg.Verbose() {
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	} else {
		cmd.Stdout, cmd.Stderr = &out, &out
	}
	if err := cmd.Run(); err != nil {
		if out.Len() > 0 {
			fmt.Print(out.String())
		}
		return fmt.Errorf("%s %s: %w", command, strings.Join(args, " "), err)
	}
	return nil
}

func goTidy() error {
	return run(false, "go", "mod", "tidy")
}
