package cmd

import (
	"bufio"
	"fmt"
	"os"
)

// confirmIfExists checks whether path exists, and if so asks the user for
// confirmation via msg. It returns true if the file doesn't exist, or if
// the user answered yes; ok false or a non-nil err both mean the caller
// should abort.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation prints msg and reads a y/n answer from stdin, defaulting
// to no on a bare ENTER.
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	defaultInput := byte('N')

	for {
		input, _ := reader.ReadString('\n')
		if len(input) == 0 {
			return defaultInput == 'Y'
		}
		c := input[0]
		if c == '\n' {
			c = defaultInput
		}
		switch c {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

func check(err error) {
	if err != nil {
		fmt.Printf("error, %v\n", err)
		os.Exit(-1)
	}
}

// parseVec3Flag parses a "x,y,z" flag value into three float32s.
func parseVec3Flag(name, s string) (x, y, z float32, err error) {
	n, err := fmt.Sscanf(s, "%f,%f,%f", &x, &y, &z)
	if err != nil || n != 3 {
		return 0, 0, 0, fmt.Errorf("%s: expected \"x,y,z\", got %q", name, s)
	}
	return x, y, z, nil
}
