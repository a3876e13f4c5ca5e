package termctl

import "os"

func pipeFDs() (*os.File, *os.File, error) {
	return os.Pipe()
}
