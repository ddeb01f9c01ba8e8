package main

import "github.com/papapumpkin/verdict/cmd"

func main() {
	cmd.Execute()
}
