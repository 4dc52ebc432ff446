package main

import "github.com/alexiusacademia/gochemics/cmd"

func main() {
	cmd.Execute()
}
