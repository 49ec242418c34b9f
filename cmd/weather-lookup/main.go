package main

import "github.com/i474232898/weather-lookup/cmd/weather-lookup/cmd"

func main() {
	cmd.Execute()
}
