package main

import (
	"os"
	sys "os"
)

type runner struct{}

func (runner) main() {
	os.Exit(3)
}

func helper() {
	os.Exit(2)
}

func main() {
	helper()
	runner{}.main()
	defer func() {
		sys.Exit(4) // want `direct call os.Exit is not allowed in main function`
	}()
	os.Exit(1) // want `direct call os.Exit is not allowed in main function`
}
