package core

import (
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/aoc2019/program"
)

// MaxSearchRange is the largest noun or verb FindInputs accepts.
const MaxSearchRange int64 = 1 << 16

// FindInputs looks for the noun and verb that, patched into addresses 1
// and 2 of a copy of p, leave target at address 0 once the copy halts
// successfully. Nouns and verbs are tried from 0 up to the given maxima,
// and the first match in noun-major order is returned. Copies that fault
// or stop on an unknown opcode are skipped. A positive stepLimit bounds
// each attempt.
//
// Nouns are searched concurrently. p is only read.
func FindInputs(
	p *program.Program,
	target int64,
	maxNoun, maxVerb int64,
	stepLimit int,
) (noun, verb int64, err error) {
	if err := p.Clone().Patch(0, 0); err != nil {
		return 0, 0, err
	}

	if maxNoun < 0 || maxVerb < 0 {
		return 0, 0, errors.Wrapf(ErrNoSolution,
			"empty search range, nouns 0..%d, verbs 0..%d", maxNoun, maxVerb)
	}

	if maxNoun > MaxSearchRange || maxVerb > MaxSearchRange {
		return 0, 0, errors.Wrapf(ErrSearchRange,
			"nouns 0..%d, verbs 0..%d, limit %d",
			maxNoun, maxVerb, MaxSearchRange)
	}

	// found[n] is the first matching verb for noun n, or -1.
	found := make([]int64, maxNoun+1)

	// best is the smallest noun with a match so far. Larger nouns are
	// skipped once it is set.
	var best atomic.Int64
	best.Store(maxNoun + 1)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for n := range found {
		noun := int64(n)
		found[n] = -1

		g.Go(func() error {
			if noun > best.Load() {
				return nil
			}

			v := searchVerbs(p, target, noun, maxVerb, stepLimit)
			found[noun] = v

			if v >= 0 {
				lowerBest(&best, noun)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	for n, v := range found {
		if v >= 0 {
			return int64(n), v, nil
		}
	}

	return 0, 0, errors.Wrapf(ErrNoSolution,
		"target %d, nouns 0..%d, verbs 0..%d", target, maxNoun, maxVerb)
}

func lowerBest(best *atomic.Int64, noun int64) {
	for {
		cur := best.Load()
		if noun >= cur || best.CompareAndSwap(cur, noun) {
			return
		}
	}
}

func searchVerbs(
	p *program.Program,
	target, noun, maxVerb int64,
	stepLimit int,
) int64 {
	for verb := int64(0); ; verb++ {
		if tryInputs(p, target, noun, verb, stepLimit) {
			return verb
		}

		if verb == maxVerb {
			return -1
		}
	}
}

func tryInputs(
	p *program.Program,
	target, noun, verb int64,
	stepLimit int,
) bool {
	attempt := p.Clone()
	if err := attempt.Patch(noun, verb); err != nil {
		return false
	}

	status, runErr := NewMachine(attempt).WithStepLimit(stepLimit).Run()
	if runErr != nil || status != Success {
		Trace("Search",
			"Noun", noun,
			"Verb", verb,
			"Status", status,
			"Error", runErr,
		)
		return false
	}

	return attempt.Get(0) == target
}
