package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string `usage:"name of the test: ALL | INSERT | VIEW"`
	Base    string `usage:"base URL, empty starts a local server"`
	N       int64  `usage:"number of items"`
	Rounds  int    `usage:"number of filter and sort round trips"`
	Workers int    `usage:"number of workers"`
}

var cleanups []func()

func main() {

	defer func() {
		fmt.Println("Cleaning up...")
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	c := Config{
		Test:    "all",
		Base:    "",
		N:       100_000,
		Rounds:  100,
		Workers: 16,
	}
	goconfig.Read(&c)

	if c.Base == "" {
		start, stop := CreateServer(&c)
		cleanups = append(cleanups, stop)
		go start()
	}

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestInsert(c)
		TestView(c)
	case "INSERT":
		TestInsert(c)
	case "VIEW":
		TestView(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}

}
