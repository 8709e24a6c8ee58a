package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/fulldump/apitest"
)

// Save writes a markdown page documenting one request and its response into
// the directory named by API_EXAMPLES_PATH. Nothing is written when the
// variable is empty.
func Save(response *apitest.Response, title, description string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	request := response.Request

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}
	requestBody := formatJSON(response.BodyRequestString())

	s := &strings.Builder{}

	fmt.Fprintf(s, "# %s\n", title)
	fmt.Fprintf(s, "%s\n", cropTabs(description))

	// curl
	s.WriteString("Curl example:\n\n```sh\ncurl ")
	if request.Method != "GET" {
		fmt.Fprintf(s, "-X %s ", request.Method)
	}
	fmt.Fprintf(s, "\"https://example.com%s%s\"", request.URL.Path, query)
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			fmt.Fprintf(s, " \\\n-H \"%s: %s\"", k, v)
		}
	}
	if requestBody != "" {
		fmt.Fprintf(s, " \\\n-d '%s'", requestBody)
	}
	s.WriteString("\n```\n\n\n")

	// raw http
	s.WriteString("HTTP request/response example:\n\n```http\n")
	fmt.Fprintf(s, "%s %s%s %s\n", request.Method, request.URL.Path, query, request.Proto)
	s.WriteString("Host: example.com\n")
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			fmt.Fprintf(s, "%s: %s\n", k, v)
		}
	}
	fmt.Fprintf(s, "\n%s\n\n", requestBody)

	fmt.Fprintf(s, "%s %s\n", response.Proto, response.Status)
	for _, k := range sortedKeys(response.Header) {
		if k == "Date" {
			s.WriteString("Date: Thu, 15 Oct 2026 10:00:00 GMT\n")
			continue
		}
		for _, v := range response.Header[k] {
			fmt.Fprintf(s, "%s: %s\n", k, v)
		}
	}
	fmt.Fprintf(s, "\n%s\n```\n\n\n", formatJSON(response.BodyString()))

	filename := strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".md"
	p := path.Join(examplesPath, path.Clean(filename))
	fmt.Println("Saving", p)
	err := os.WriteFile(p, []byte(s.String()), 0666)
	if err != nil {
		fmt.Println("Saving err:", err)
	}
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatJSON indents body when it is a single JSON document and returns it
// untouched otherwise (for example newline delimited streams).
func formatJSON(body string) string {

	var i interface{}

	err := json.Unmarshal([]byte(body), &i)
	if err != nil {
		return body
	}

	b, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return body
	}

	return string(b)
}

// cropTabs removes the indentation shared by every non blank line, so
// descriptions can be written as indented raw strings.
func cropTabs(d string) string {

	lines := strings.Split(d, "\n")

	minTabs := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c := len(line) - len(strings.TrimLeft(line, "\t"))
		if minTabs < 0 || c < minTabs {
			minTabs = c
		}
	}
	if minTabs <= 0 {
		return strings.TrimSpace(d) + "\n"
	}

	prefix := strings.Repeat("\t", minTabs)
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
