package main

import "github.com/Acizza/anup/cmd"

func main() {
	cmd.Execute()
}
