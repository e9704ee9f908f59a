package main

import "github.com/openmerch/shelfdex/cmd"

func main() {
	cmd.Execute()
}
