package main

import "hotel-indexer/cmd"

func main() {
	cmd.Execute()
}
