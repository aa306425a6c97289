package main

import "github.com/kamal-hamza/gallery/cmd"

func main() {
	cmd.Execute()
}
