package main

import "github.com/encodeous/kaleido/cmd"

func main() {
	cmd.Execute()
}
