// Command stockctl consulta el inventario y dispara la reposición desde la terminal.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(loadDeps).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
