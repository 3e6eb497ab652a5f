package main

/*

Command line front end of the collinear-erasure game solver.

	collinear solve -m 3 -n 4 --threads 4 --progress 100000
	collinear lines -m 3 -n 3

*/

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
