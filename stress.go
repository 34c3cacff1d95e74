// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlkit/avl"
)

type StressOptions struct {
	Operations int
	KeyRange   int
	Seed       int64
	// Progress, when non-nil, receives a progress bar.
	Progress io.Writer
}

type StressReport struct {
	Operations int
	Inserts    int
	Deletes    int
	Noops      int
	FinalLen   int
	MaxHeight  int
	Duration   time.Duration
}

// runStress applies random inserts and deletes to a tree and checks it after
// every operation against a plain set of the same keys.
func runStress(opts StressOptions, log zerolog.Logger) (StressReport, error) {
	if opts.Operations <= 0 || opts.KeyRange <= 0 {
		return StressReport{}, fmt.Errorf("operations and key range must be positive, got %d and %d", opts.Operations, opts.KeyRange)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(opts.Operations,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("🌳 Checking AVL invariants..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(opts.Progress, "\n✅ Stress run completed!\n")
			}),
		)
	}

	rnd := rand.New(rand.NewSource(opts.Seed))
	tree := avl.New[float64]()
	ref := make(map[float64]struct{})
	report := StressReport{Operations: opts.Operations}
	start := time.Now()

	for i := 0; i < opts.Operations; i++ {
		key := float64(rnd.Intn(opts.KeyRange))
		_, present := ref[key]

		var changed bool
		if rnd.Intn(3) == 0 {
			report.Deletes++
			changed = tree.Delete(key)
			delete(ref, key)
			if changed != present {
				return report, fmt.Errorf("op %d: delete %s reported %t, key present %t", i, formatKey(key), changed, present)
			}
		} else {
			report.Inserts++
			changed = tree.Insert(key)
			ref[key] = struct{}{}
			if changed == present {
				return report, fmt.Errorf("op %d: insert %s reported %t, key present %t", i, formatKey(key), changed, present)
			}
		}
		if !changed {
			report.Noops++
		}

		if err := tree.Validate(); err != nil {
			log.Error().Err(err).Int("op", i).Msg("invariant check failed")
			return report, fmt.Errorf("op %d: %w", i, err)
		}
		if tree.Len() != len(ref) {
			return report, fmt.Errorf("op %d: tree holds %d keys, want %d", i, tree.Len(), len(ref))
		}
		report.MaxHeight = max(report.MaxHeight, tree.Height())

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	if err := compareWithReference(tree, ref); err != nil {
		return report, err
	}

	report.FinalLen = tree.Len()
	report.Duration = time.Since(start)
	log.Debug().Int("ops", report.Operations).Int("len", report.FinalLen).Int("maxHeight", report.MaxHeight).Dur("took", report.Duration).Msg("stress run finished")
	return report, nil
}

func compareWithReference(tree *avl.Tree[float64], ref map[float64]struct{}) error {
	want := make([]float64, 0, len(ref))
	var sum float64
	for k := range ref {
		want = append(want, k)
	}
	slices.Sort(want)
	for _, k := range want {
		sum += k
	}

	if got := tree.Keys(); !slices.Equal(got, want) {
		return fmt.Errorf("final keys differ: got %d keys, want %d", len(got), len(want))
	}
	if got := tree.Sum(); got != sum {
		return fmt.Errorf("sum is %s, want %s", formatKey(got), formatKey(sum))
	}
	if len(want) == 0 {
		return nil
	}

	minKey, err := tree.Min()
	if err != nil {
		return err
	}
	maxKey, err := tree.Max()
	if err != nil {
		return err
	}
	if minKey != want[0] || maxKey != want[len(want)-1] {
		return fmt.Errorf("min/max are %s/%s, want %s/%s",
			formatKey(minKey), formatKey(maxKey), formatKey(want[0]), formatKey(want[len(want)-1]))
	}
	return nil
}

func printStressReport(w io.Writer, r StressReport) {
	fmt.Fprintf(w, "%sOperations:%s %d (%d inserts, %d deletes, %d no-ops)\n", Info, Reset, r.Operations, r.Inserts, r.Deletes, r.Noops)
	fmt.Fprintf(w, "%sFinal size:%s %d\n", Info, Reset, r.FinalLen)
	fmt.Fprintf(w, "%sMax height:%s %d\n", Info, Reset, r.MaxHeight)
	fmt.Fprintf(w, "%sTook:%s %s\n", Info, Reset, r.Duration.Round(time.Millisecond))
}
