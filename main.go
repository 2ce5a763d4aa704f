package main

import "github.com/naka-gawa/github-activities/cmd"

func main() {
	cmd.Execute()
}
