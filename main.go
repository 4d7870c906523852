package main

import "github.com/jsphweid/sebastian/cmd"

func main() {
	cmd.Execute()
}
