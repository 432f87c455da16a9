package main

import "github.com/d4j3y2k/keyboy/cmd"

func main() {
	cmd.Execute()
}
