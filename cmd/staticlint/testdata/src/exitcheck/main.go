package main

import (
	"log"
	"os"
)

func run() error { return nil }

func helper() {
	os.Exit(1)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err) // want `log.Fatal called in main, return an error instead`
	}
	defer func() {
		os.Exit(2) // want `os.Exit called in main, return an error instead`
	}()
	helper()
	os.Exit(0) // want `os.Exit called in main, return an error instead`
}
