package main

import "github.com/liammcnabb/spider-man-villain-viz/cmd"

func main() {
	cmd.Execute()
}
