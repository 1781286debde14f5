// Command matchdemo loads a literal group of control bytes and prints
// which lanes match a given tag, exercised through the public swisstable
// API.
package main

import (
	"fmt"

	"github.com/go-swiss/swisstable"
)

func main() {
	tag := byte(42)
	group := []byte{42, 0, 42, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 42}

	mask := swisstable.DebugMatch(group, tag)
	fmt.Println("group:", group)
	fmt.Println("tag:", tag)

	if !mask.IsValid() {
		fmt.Println("no match")
		return
	}
	for {
		lane, ok := mask.Next()
		if !ok {
			break
		}
		fmt.Println("match at lane:", lane)
	}
}
