package patient

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

var hmoNames = []string{
	"Hygeia HMO", "Reliance HMO", "AXA Mansard Health", "Leadway Health",
	"Avon HMO", "Clearline HMO",
}

var hmoPlans = []string{"Bronze", "Silver", "Gold", "Platinum"}

// Generate produces n synthetic candidates. The same seed always yields the
// same list, so generated files can be diffed and replayed.
func Generate(n int, seed uint64) []Candidate {
	f := gofakeit.New(seed)

	dobFrom := time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)
	dobTo := time.Date(2015, time.December, 31, 0, 0, 0, 0, time.UTC)

	cands := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		c := Candidate{
			Name:        f.Name(),
			Sex:         f.Gender(),
			Address:     f.Address().Address,
			DateOfBirth: str(f.DateRange(dobFrom, dobTo).Format("2006-01-02")),
		}
		// Most patients have at least one contact field; a few have none,
		// same as the walk-in entries in the built-in list.
		if f.Number(0, 9) > 0 {
			c.PhoneNumber = str(f.Phone())
		}
		if f.Number(0, 9) > 2 {
			c.Email = str(f.Email())
		}
		if f.Bool() {
			c.HMO = &HMO{
				Name:           hmoNames[f.Number(0, len(hmoNames)-1)],
				Plan:           hmoPlans[f.Number(0, len(hmoPlans)-1)],
				EnrolleeNumber: fmt.Sprintf("ENR-%06d", f.Number(100000, 999999)),
			}
		}
		if f.Number(0, 3) == 0 {
			c.Outstanding = str(fmt.Sprintf("%d.00", f.Number(1000, 50000)))
		}
		if f.Bool() {
			c.IsFamilyHead = true
			// Name-based UUID keeps family identifiers stable across runs
			// with the same seed.
			c.FamilyID = str(uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("seedr-family-%d", i))).String())
		}
		cands = append(cands, c)
	}
	return cands
}
