package main

import "github.com/campustools/roomsense/cmd"

func main() {
	cmd.Execute()
}
