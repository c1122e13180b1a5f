package main

import "github.com/beka-birhanu/vinom-mazegen/cmd"

func main() {
	cmd.Execute()
}
