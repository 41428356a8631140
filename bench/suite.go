// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bench

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ajwerner/treemap"
	"github.com/sirupsen/logrus"
)

// Case names.
const (
	CaseSet           = "set"
	CaseSetGet        = "set/get"
	CaseSetRemove     = "set/remove"
	CaseSetRemoveFunc = "set/remove custom compare"
	CaseMultiRemove   = "multiset/remove"
)

var caseNames = []string{
	CaseSet, CaseSetGet, CaseSetRemove, CaseSetRemoveFunc, CaseMultiRemove,
}

func isCaseName(name string) bool {
	for _, n := range caseNames {
		if n == name {
			return true
		}
	}
	return false
}

// Case is a single timed workload. Run is called once per iteration with
// the run's keys.
type Case struct {
	Name string
	Run  func(keys []string) error
}

// Cases returns the cases selected by cfg, in a fixed order.
func Cases(cfg *Config) []Case {
	all := []Case{
		{Name: CaseSet, Run: runSet},
		{Name: CaseSetGet, Run: runSetGet},
		{Name: CaseSetRemove, Run: runSetRemove},
		{Name: CaseSetRemoveFunc, Run: runSetRemoveFunc},
		{Name: CaseMultiRemove, Run: runMultiRemove},
	}
	if len(cfg.Cases) == 0 {
		return all
	}
	var selected []Case
	for _, c := range all {
		for _, name := range cfg.Cases {
			if c.Name == name {
				selected = append(selected, c)
				break
			}
		}
	}
	return selected
}

func runSet(keys []string) error {
	Insert(keys)
	return nil
}

func runSetGet(keys []string) error {
	return VerifyGet(Insert(keys), keys)
}

func runSetRemove(keys []string) error {
	m := Insert(keys)
	Remove(m, keys)
	return checkEmpty(m.Len())
}

func runSetRemoveFunc(keys []string) error {
	m := InsertFunc(func(a, b string) int { return strings.Compare(a, b) }, keys)
	Remove(m, keys)
	return checkEmpty(m.Len())
}

func runMultiRemove(keys []string) error {
	m := treemap.NewMulti[string, string](strings.Compare)
	for _, k := range keys {
		m.Add(k, k)
	}
	for _, k := range keys {
		m.Delete(k)
	}
	return checkEmpty(m.Len())
}

func checkEmpty(n int) error {
	if n != 0 {
		return fmt.Errorf("map not empty after removal: %d entries remain", n)
	}
	return nil
}

// Result is the timing of one case over a pass.
type Result struct {
	Name       string
	Iterations int
	Keys       int
	Elapsed    time.Duration
}

// Label describes the result the way the report prints it, e.g.
// "set 10000 keys 10 times".
func (r Result) Label() string {
	return fmt.Sprintf("%s %d keys %d times", r.Name, r.Keys, r.Iterations)
}

// PerIteration returns the mean duration of one iteration.
func (r Result) PerIteration() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.Iterations)
}

// Runner times the configured cases.
type Runner struct {
	cfg *Config
	log logrus.FieldLogger
}

// NewRunner validates cfg and returns a Runner logging to logger. A nil
// logger uses the logrus standard logger.
func NewRunner(cfg *Config, logger logrus.FieldLogger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Runner{cfg: cfg, log: logger}, nil
}

// Run generates the keys, optionally rehearses every case, and returns the
// timings of the measured pass. The first failing case aborts the run.
func (r *Runner) Run() ([]Result, error) {
	keys := GenerateKeys(rand.New(rand.NewSource(r.cfg.Seed)), r.cfg.Keys, r.cfg.KeyLength)
	cases := Cases(r.cfg)
	r.log.WithFields(logrus.Fields{
		"keys":       len(keys),
		"key_length": r.cfg.KeyLength,
		"iterations": r.cfg.Iterations,
		"cases":      len(cases),
	}).Info("starting benchmark")

	if r.cfg.Rehearsal {
		for _, c := range cases {
			res, err := r.runCase(c, keys)
			if err != nil {
				return nil, err
			}
			r.log.WithFields(logrus.Fields{
				"case":    res.Label(),
				"elapsed": res.Elapsed,
			}).Debug("rehearsal")
		}
	}

	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		res, err := r.runCase(c, keys)
		if err != nil {
			return nil, err
		}
		r.log.WithFields(logrus.Fields{
			"case":          res.Label(),
			"elapsed":       res.Elapsed,
			"per_iteration": res.PerIteration(),
		}).Info("case complete")
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runCase(c Case, keys []string) (Result, error) {
	res := Result{Name: c.Name, Iterations: r.cfg.Iterations, Keys: len(keys)}
	start := time.Now()
	for i := 0; i < r.cfg.Iterations; i++ {
		if err := c.Run(keys); err != nil {
			r.log.WithError(err).WithField("case", c.Name).Error("case failed")
			return res, fmt.Errorf("case %q: %w", c.Name, err)
		}
	}
	res.Elapsed = time.Since(start)
	return res, nil
}
