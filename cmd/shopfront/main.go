package main

import "github.com/nfrund/shopfront/cmd/shopfront/cmd"

func main() {
	cmd.Execute()
}
