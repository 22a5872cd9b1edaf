// Command bstctl replays add, remove and search sequences against a
// string-keyed binary search tree and logs the tree after every step.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
