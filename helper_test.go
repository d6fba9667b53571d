package pricebook

import "github.com/etnz/pricebook/date"

// buy is a helper for test to create a purchase record from consts.
func buy(on, code string, quantity int, price float64) Record {
	return NewRecord(date.MustParse(on), code, "item "+code, quantity, "支", M(price), M(price).Mul(quantity))
}

// ret is a helper for test to create a return record, quantity is given positive.
func ret(on, code string, quantity int, price float64) Record {
	return buy(on, code, -quantity, price)
}

// named renames a record, to test which name wins when names drift.
func named(r Record, name string) Record {
	r.Name = name
	return r
}

// sampleLedger is a small ledger exercising returns, ties, name drift and
// several years.
func sampleLedger() *Ledger {
	return NewLedger(
		buy("2024-05-10", "A001", 10, 50),
		buy("2024-05-11", "A001", 10, 60),
		ret("2024-05-12", "A001", 5, 50),
		buy("2023-12-30", "B002", 10, 40),
		buy("2024-01-05", "B002", 10, 40),
		named(buy("2024-02-01", "B002", 10, 45), "new name"),
		buy("2024-03-01", "C003", 1, 30),
		buy("2024-04-01", "C003", 1, 35),
		buy("2024-05-01", "C003", 1, 40),
		ret("2024-06-01", "R004", 3, 10),
		buy("2024-01-01", "Z005", 5, 40),
		ret("2024-01-02", "Z005", 5, 40),
	)
}
