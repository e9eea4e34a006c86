package main

import "github.com/vietddude/wallet-explorer/internal/cli"

func main() {
	cli.Execute()
}
