package main

import "github.com/henderiw/contrange/cmd"

func main() {
	cmd.Execute()
}
