package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fulldump/datagrid/seed"
)

func TestInsert(c Config) {

	records := seed.Generate(1000, seed.NewRand(uint64(time.Now().UnixNano())), seedToday())

	items := c.N

	go func() {
		for {
			fmt.Println("items:", atomic.LoadInt64(&items))
			time.Sleep(1 * time.Second)
		}
	}()

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for {
			n := atomic.AddInt64(&items, -1)
			if n < 0 {
				break
			}
			Post(c.Base+"/v1/items", records[n%int64(len(records))])
		}
	})

	took := time.Since(t0)
	fmt.Println("sent:", c.N)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f items/sec\n", float64(c.N)/took.Seconds())
}
