package main

import "github.com/redactyl/extractor/cmd/extractor"

func main() { extractor.Execute() }
