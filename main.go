package main

import "github.com/colinp85/simpler-salesforce/cmd"

func main() {
	cmd.Execute()
}
