package util

import (
	"fmt"
)

func ExampleGlob() {
	matches, err := Glob(`.`, `**/*_test.go`)
	if err != nil {
		fmt.Println(err)
	} else {
		for _, m := range matches {
			fmt.Println(m)
		}
	}
	// Output: glob_test.go
}
