package main

import "tagcount/cmd/tagcount/cmd"

func main() {
	cmd.Execute()
}
