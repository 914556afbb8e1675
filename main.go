package main

import "github.com/satyajit2online/Load-Distribution/cmd"

func main() {
	cmd.Execute()
}
