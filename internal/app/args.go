package app

import "errors"

// Usage is printed when the command line is wrong.
const Usage = "Usage: fbview <file>"

var ErrUsage = errors.New("expected exactly one file argument")

// ParseArgs returns the file to page from the arguments after the program
// name.
func ParseArgs(args []string) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", ErrUsage
	}
	return args[0], nil
}
