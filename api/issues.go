package api

import (
	"fmt"
)

// NotAnErrorSource creates an error with a descriptive text and returns it.
func NotAnErrorSource(c Configuration) error {
	return fmt.Errorf(`configuration of type %T does not report error conditions`, c)
}

// YamlNotHash creates an error with a descriptive text and returns it.
func YamlNotHash(path string) error {
	return fmt.Errorf(`file '%s' does not contain a YAML hash`, path)
}

// UnknownMergeStrategy creates an error with a descriptive text and returns it.
func UnknownMergeStrategy(name string) error {
	return fmt.Errorf(`unknown merge strategy '%s'`, name)
}

// UnknownRendering creates an error with a descriptive text and returns it.
func UnknownRendering(name string) error {
	return fmt.Errorf(`unknown rendering '%s'`, name)
}
