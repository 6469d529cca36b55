package main

import "ytlist/cmd"

func main() {
	cmd.Execute()
}
