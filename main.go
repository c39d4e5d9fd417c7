package main

import "github.com/ethanolivertroy/aptgraph/cmd"

func main() {
	cmd.Execute()
}
