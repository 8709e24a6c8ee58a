// Package seed generates sample employees to populate a fresh grid.
package seed

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/fulldump/datagrid/record"
)

const DefaultRows = 10

var names = []string{
	"Alice Johnson", "Bob Smith", "Charlie Brown", "Diana Davis", "Eve Wilson",
	"Frank Miller", "Grace Lee", "Henry Taylor", "Ivy Chen", "Jack Anderson",
}

var roles = []string{
	"Developer", "Designer", "Manager", "QA", "DevOps",
	"Data Scientist", "Product Owner", "Admin", "Analyst", "Tech Lead",
}

var departments = []string{
	"Engineering", "Design", "Management", "QA", "Operations",
	"Data", "Product", "IT", "Business", "Engineering",
}

const (
	minSalary        = 40000.0
	maxSalary        = 120000.0
	maxSeniorityDays = 2000
)

// Generate returns n sample records. Names, roles and departments cycle
// through fixed lists; salary, hire date (up to maxSeniorityDays before
// today), status, remote work and contract type come from rnd. Every third
// record starting with the first is inactive.
func Generate(n int, rnd *rand.Rand, today record.Date) []record.Record {
	records := make([]record.Record, 0, n)
	for i := 0; i < n; i++ {
		name := names[i%len(names)]
		if round := i / len(names); round > 0 {
			name += " " + strconv.Itoa(round+1)
		}

		salary := minSalary + rnd.Float64()*(maxSalary-minSalary)

		records = append(records, record.Record{
			Name:         name,
			Role:         roles[i%len(roles)],
			Department:   departments[i%len(departments)],
			Salary:       math.Round(salary*100) / 100,
			IsActive:     i%3 != 0,
			HireDate:     today.AddDays(-rnd.IntN(maxSeniorityDays)),
			Status:       record.Statuses[rnd.IntN(len(record.Statuses))],
			RemoteWork:   rnd.IntN(2) == 1,
			ContractType: record.ContractTypes[rnd.IntN(len(record.ContractTypes))],
		})
	}
	return records
}

// NewRand returns a generator seeded with seed, so runs can be repeated.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
