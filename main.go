package main

import "github.com/sumit1004/neurolink_backend/cmd"

func main() {
	cmd.Execute()
}
