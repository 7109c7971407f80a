package main

import "confsync/cmd"

func main() {
	cmd.Execute()
}
