// Command netgen grows Barabási–Albert, Klemm–Eguíluz and Watts–Strogatz
// networks and prints their summary statistics.
//
//	netgen ba --nodes 200 --edges 3 --seed 7 --trials 10
//	netgen ke --nodes 200 --edges 3 --p-mu 0.1 --trace
//	netgen ws --nodes 200 --degree 6 --p 0.05 --rewire independent
//
// Every persistent flag may also come from a --config file or from a
// NETGEN_<KEY> environment variable.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
