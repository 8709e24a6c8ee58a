package main

import (
	"fmt"
	"time"

	"github.com/fulldump/datagrid/record"
)

var filters = []string{"an", "dev", "engineering", "full", "2024", "true", ""}

func seedToday() record.Date {
	return record.DateOf(time.Now())
}

// TestView measures filter and sort round trips: change the view, then read
// every projected row.
func TestView(c Config) {

	rows := 0

	t0 := time.Now()
	for i := 0; i < c.Rounds; i++ {
		Post(c.Base+"/v1/view:setFilterText", JSON{"text": filters[i%len(filters)]})
		Post(c.Base+"/v1/view:toggleSort", JSON{"role": record.Fields()[i%len(record.Fields())].Key()})
		rows += Count(c.Base + "/v1/view/rows")
	}

	took := time.Since(t0)
	fmt.Println("rounds:", c.Rounds)
	fmt.Println("rows read:", rows)
	fmt.Println("took:", took)
	fmt.Printf("Latency: %s per round\n", took/time.Duration(max(c.Rounds, 1)))
}
