// msbee lists the checklist tasks in a markdown vault that can be worked on now.
package main

import (
	"os"

	"github.com/msbee/msbee/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
