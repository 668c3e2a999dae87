package seeder

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/logger"
	"github.com/Gbotemi-ojo/orthoplus-be/internal/seedr/patient"
)

// Report totals one seeding pass. Added + Skipped equals the number of
// candidates processed when the pass completes without error.
type Report struct {
	Added   int
	Skipped int
}

// PatientStore is the store surface the seeder depends on.
type PatientStore interface {
	FindDuplicate(ctx context.Context, c patient.Candidate) (bool, error)
	Insert(ctx context.Context, rec patient.Record) error
	Close() error
}

// Seeder walks a fixed candidate list once, inserting each candidate unless
// a stored row already matches it on phone number or email.
type Seeder struct {
	Store  PatientStore
	Log    *zap.SugaredLogger
	DryRun bool

	// Now stamps created_at for candidates that carry none. Defaults to
	// time.Now; tests pin it.
	Now func() time.Time
}

// Seed runs one pass against st and releases the pool exactly once before
// returning, on the success and the error path alike.
func Seed(ctx context.Context, st PatientStore, candidates []patient.Candidate, dryRun bool) (Report, error) {
	defer func() {
		if err := st.Close(); err != nil {
			logger.L().Warnw("closing pool", "error", err)
		}
	}()
	s := &Seeder{Store: st, DryRun: dryRun}
	return s.Run(ctx, candidates)
}

// Run processes the candidates sequentially: at most one duplicate-check
// query and one insert per candidate, aborting the whole pass on the first
// store error. It does not close the store.
func (s *Seeder) Run(ctx context.Context, candidates []patient.Candidate) (Report, error) {
	log := s.Log
	if log == nil {
		log = logger.L()
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}

	var rep Report
	for _, cand := range candidates {
		found, err := s.Store.FindDuplicate(ctx, cand)
		if err != nil {
			return rep, err
		}
		if found {
			rep.Skipped++
			log.Debugw("patient already seeded, skipping", "name", cand.Name)
			continue
		}

		rec, err := cand.ToRecord(now())
		if err != nil {
			return rep, fmt.Errorf("candidate %q: %w", cand.Name, err)
		}
		if !s.DryRun {
			if err := s.Store.Insert(ctx, rec); err != nil {
				return rep, err
			}
		}
		rep.Added++
		log.Debugw("patient added", "name", cand.Name)
	}
	return rep, nil
}
