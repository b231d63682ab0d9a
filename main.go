package main

import "salesdash/cmd"

func main() {
	cmd.Execute()
}
