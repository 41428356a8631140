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
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeys(t *testing.T) {
	keys := GenerateKeys(rand.New(rand.NewSource(3)), 100, 9)
	require.Len(t, keys, 100)
	for _, k := range keys {
		require.Len(t, k, 9)
		require.Equal(t, "", strings.Trim(k, letters))
	}
	again := GenerateKeys(rand.New(rand.NewSource(3)), 100, 9)
	assert.Equal(t, keys, again)
	assert.Empty(t, GenerateKeys(rand.New(rand.NewSource(3)), 0, 9))
}

func TestCases(t *testing.T) {
	var names []string
	for _, c := range Cases(NewConfig()) {
		names = append(names, c.Name)
	}
	assert.Equal(t, caseNames, names)

	cfg := NewConfig()
	cfg.Cases = []string{CaseMultiRemove, CaseSet}
	names = names[:0]
	for _, c := range Cases(cfg) {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{CaseSet, CaseMultiRemove}, names)

	keys := GenerateKeys(rand.New(rand.NewSource(5)), 500, 2)
	for _, c := range Cases(NewConfig()) {
		assert.NoError(t, c.Run(keys), c.Name)
	}
}

func newTestRunner(t *testing.T, cfg *Config) (*Runner, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	r, err := NewRunner(cfg, logger)
	require.NoError(t, err)
	return r, hook
}

func TestRunner(t *testing.T) {
	cfg := NewConfig()
	cfg.Keys = 300
	cfg.Iterations = 3
	r, hook := newTestRunner(t, cfg)

	results, err := r.Run()
	require.NoError(t, err)
	require.Len(t, results, len(caseNames))
	for i, res := range results {
		assert.Equal(t, caseNames[i], res.Name)
		assert.Equal(t, 3, res.Iterations)
		assert.Equal(t, 300, res.Keys)
		assert.Greater(t, res.Elapsed, time.Duration(0))
	}

	var rehearsals, completed int
	for _, e := range hook.AllEntries() {
		switch e.Message {
		case "rehearsal":
			assert.Equal(t, logrus.DebugLevel, e.Level)
			rehearsals++
		case "case complete":
			assert.Equal(t, logrus.InfoLevel, e.Level)
			assert.Contains(t, e.Data, "per_iteration")
			completed++
		}
	}
	assert.Equal(t, len(caseNames), rehearsals)
	assert.Equal(t, len(caseNames), completed)
}

func TestRunnerFromConfigFile(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Load("testdata/suite.toml"))
	r, hook := newTestRunner(t, cfg)

	results, err := r.Run()
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "set/get 200 keys 2 times", results[0].Label())
	assert.Equal(t, "set/remove 200 keys 2 times", results[1].Label())
	for _, e := range hook.AllEntries() {
		assert.NotEqual(t, "rehearsal", e.Message)
	}
}

func TestRunnerCaseFailure(t *testing.T) {
	cfg := NewConfig()
	cfg.Keys = 10
	cfg.Iterations = 1
	cfg.Rehearsal = false
	r, hook := newTestRunner(t, cfg)

	boom := errors.New("boom")
	res, err := r.runCase(Case{Name: "failing", Run: func([]string) error { return boom }}, []string{"a"})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `case "failing"`)
	assert.Equal(t, "failing", res.Name)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "failing", hook.LastEntry().Data["case"])
}

func TestNewRunnerInvalidConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Iterations = 0
	_, err := NewRunner(cfg, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	r, err := NewRunner(NewConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, logrus.StandardLogger(), r.log)
}

func TestResult(t *testing.T) {
	r := Result{Name: CaseSet, Iterations: 4, Keys: 10, Elapsed: 8 * time.Millisecond}
	assert.Equal(t, "set 10 keys 4 times", r.Label())
	assert.Equal(t, 2*time.Millisecond, r.PerIteration())
	assert.Equal(t, time.Duration(0), Result{}.PerIteration())
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, []Result{
		{Name: CaseSet, Iterations: 10, Keys: 100, Elapsed: 10 * time.Millisecond},
		{Name: CaseSetRemove, Iterations: 10, Keys: 100, Elapsed: 20 * time.Millisecond},
	}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "case"))
	assert.Contains(t, lines[1], "set 100 keys 10 times")
	assert.Contains(t, lines[1], "10ms")
	assert.Contains(t, lines[1], "1ms")
	assert.Contains(t, lines[2], "set/remove 100 keys 10 times")
	assert.Contains(t, lines[2], "20ms")
	assert.Contains(t, lines[2], "2ms")
	assert.Equal(t, strings.Index(lines[0], "total"), strings.Index(lines[1], "10ms"))
}
