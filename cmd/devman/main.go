package main

import "github.com/HeshanSudarshana/devtool-manager/internal/cli"

func main() {
	cli.Execute()
}
