package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/fulldump/datagrid/bootstrap"
	"github.com/fulldump/datagrid/configuration"
)

type JSON = map[string]any

var client = &http.Client{
	Transport: &http.Transport{
		MaxConnsPerHost:     1024,
		MaxIdleConnsPerHost: 1024,
		MaxIdleConns:        1024,
	},
}

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

// Post sends payload as JSON and discards the response body.
func Post(url string, payload any) {

	body, _ := json.Marshal(payload)

	resp, err := client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("ERROR: do request:", err.Error())
		os.Exit(4)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		fmt.Println("ERROR: unexpected status:", resp.Status, url)
		io.Copy(os.Stdout, resp.Body)
		os.Exit(5)
	}
	io.Copy(io.Discard, resp.Body)
}

// Count reads the whole stream at url and returns how many lines it has.
func Count(url string) int {

	resp, err := client.Get(url)
	if err != nil {
		fmt.Println("ERROR: do request:", err.Error())
		os.Exit(4)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return bytes.Count(body, []byte("\n"))
}

func CreateServer(c *Config) (start, stop func()) {

	conf := configuration.Default()
	conf.SampleRows = 0
	conf.EnableAccessLog = false
	conf.EnableCompression = false
	c.Base = "http://" + conf.HttpAddr

	return bootstrap.Bootstrap(&conf)
}
