package main

import "github.com/KostasZigo/casgit/cmd"

func main() {
	cmd.Execute()
}
