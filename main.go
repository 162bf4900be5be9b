package main

import "fixresx/cmd"

func main() {
	cmd.Execute()
}
