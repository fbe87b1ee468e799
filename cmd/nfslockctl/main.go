// Command nfslockctl is an operator-facing CLI over package nfslock: it
// acquires, releases, inspects, and garbage-collects locks in a shared
// lock directory.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
