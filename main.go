package main

import "orbitdeck/cmd"

func main() {
	cmd.Execute()
}
