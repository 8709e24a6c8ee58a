package seed

import (
	"testing"
	"time"

	"github.com/fulldump/biff"

	"github.com/fulldump/datagrid/record"
)

func TestGenerate(t *testing.T) {

	today := record.NewDate(2026, time.October, 15)
	records := Generate(12, NewRand(7), today)

	biff.AssertEqual(len(records), 12)
	biff.AssertEqual(records[0].Name, "Alice Johnson")
	biff.AssertEqual(records[9].Department, "Engineering")
	biff.AssertEqual(records[10].Name, "Alice Johnson 2")

	for i, r := range records {
		biff.AssertEqual(r.IsActive, i%3 != 0)
		biff.AssertTrue(r.Salary >= minSalary && r.Salary <= maxSalary)
		biff.AssertFalse(r.HireDate.Time().After(today.Time()))
		biff.AssertTrue(r.HireDate.Time().After(today.AddDays(-maxSeniorityDays - 1).Time()))
		biff.AssertInArray(record.Statuses, r.Status)
		biff.AssertInArray(record.ContractTypes, r.ContractType)
	}
}

func TestGenerate_Repeatable(t *testing.T) {

	today := record.NewDate(2026, time.October, 15)

	biff.AssertEqual(
		Generate(5, NewRand(42), today),
		Generate(5, NewRand(42), today),
	)
}
