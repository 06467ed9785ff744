package main

import "github.com/jonwraymond/gensecrets/internal/cli"

func main() {
	cli.Execute()
}
