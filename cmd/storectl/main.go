package main

import "store-offers-api/internal/cli"

func main() {
	cli.Execute()
}
