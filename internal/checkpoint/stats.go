// internal/checkpoint/stats.go
package checkpoint

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/prajaktaborse1234/synthmerge/internal/util"
)

// Logprob buckets. Every row with a logprob cell feeds the global bucket plus
// exactly one outcome bucket: errored rows count as errors regardless of
// outcome, then the best matching outcome wins (correct before aligned before
// stripped), and rows matching none count as incorrect.
const (
	LogprobGlobal = iota
	LogprobErrors
	LogprobIncorrect
	LogprobStripped
	LogprobAligned
	LogprobCorrect
	logprobBuckets
)

// ModelStats aggregates the result rows of a single model.
type ModelStats struct {
	Model           string
	Total           int
	Correct         int
	CorrectAligned  int
	CorrectStripped int
	Errors          int

	Accuracy         float64
	AccuracyAligned  float64
	AccuracyStripped float64
	ErrorRate        float64

	// AvgTokens and the logprob averages only carry meaning when the
	// matching sample count is nonzero; rows may omit those cells.
	AvgTokens      float64
	TokenSamples   int
	AvgDuration    float64
	AvgLogprob     [logprobBuckets]float64
	LogprobSamples [logprobBuckets]int
}

type modelTotals struct {
	total, correct, aligned, stripped, errors int

	tokenSum     uint64
	tokenCount   int
	durationSum  float64
	logprobSum   [logprobBuckets]float64
	logprobCount [logprobBuckets]int
}

// ComputeModelStats aggregates rows per model and returns the models sorted by
// accuracy, best first (ties by model name). With maxEntries > 0 only rows
// whose entry_index parses as an integer below maxEntries are counted; an
// unparseable index is then an error. Numeric cells (duration always, tokens
// and logprob when present) must parse.
func ComputeModelStats(rows []Row, maxEntries int) ([]ModelStats, error) {
	totals := make(map[string]*modelTotals)
	var order []string

	for _, row := range rows {
		if maxEntries > 0 {
			idx, err := strconv.Atoi(row[ColEntryIndex])
			if err != nil {
				return nil, fmt.Errorf("unable to parse entry_index %q: %w", row[ColEntryIndex], err)
			}
			if idx >= maxEntries {
				continue
			}
		}

		model := row[ColModel]
		t := totals[model]
		if t == nil {
			t = &modelTotals{}
			totals[model] = t
			order = append(order, model)
		}

		t.total++
		t.correct += util.BoolToInt(row.True(ColCorrect))
		t.aligned += util.BoolToInt(row.True(ColCorrectAligned))
		t.stripped += util.BoolToInt(row.True(ColCorrectStripped))
		t.errors += util.BoolToInt(row.True(ColError))

		duration, err := strconv.ParseFloat(row[ColDuration], 64)
		if err != nil {
			return nil, fmt.Errorf("entry %s model %s: unable to parse duration %q: %w",
				row[ColEntryIndex], model, row[ColDuration], err)
		}
		t.durationSum += duration

		if cell := row[ColTokens]; cell != "" {
			tokens, err := strconv.ParseUint(cell, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("entry %s model %s: unable to parse tokens %q: %w",
					row[ColEntryIndex], model, cell, err)
			}
			t.tokenSum += tokens
			t.tokenCount++
		}

		if cell := row[ColLogprob]; cell != "" {
			logprob, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("entry %s model %s: unable to parse logprob %q: %w",
					row[ColEntryIndex], model, cell, err)
			}
			t.logprobSum[LogprobGlobal] += logprob
			t.logprobCount[LogprobGlobal]++
			bucket := logprobBucket(row)
			t.logprobSum[bucket] += logprob
			t.logprobCount[bucket]++
		}
	}

	stats := make([]ModelStats, 0, len(order))
	for _, model := range order {
		t := totals[model]
		count := float64(t.total)
		s := ModelStats{
			Model:            model,
			Total:            t.total,
			Correct:          t.correct,
			CorrectAligned:   t.aligned,
			CorrectStripped:  t.stripped,
			Errors:           t.errors,
			Accuracy:         float64(t.correct) / count,
			AccuracyAligned:  float64(t.aligned) / count,
			AccuracyStripped: float64(t.stripped) / count,
			ErrorRate:        float64(t.errors) / count,
			TokenSamples:     t.tokenCount,
			AvgDuration:      t.durationSum / count,
			LogprobSamples:   t.logprobCount,
		}
		if t.tokenCount > 0 {
			s.AvgTokens = float64(t.tokenSum) / float64(t.tokenCount)
		}
		for b := 0; b < logprobBuckets; b++ {
			if t.logprobCount[b] > 0 {
				s.AvgLogprob[b] = t.logprobSum[b] / float64(t.logprobCount[b])
			}
		}
		stats = append(stats, s)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Accuracy != stats[j].Accuracy {
			return stats[i].Accuracy > stats[j].Accuracy
		}
		return stats[i].Model < stats[j].Model
	})
	return stats, nil
}

func logprobBucket(row Row) int {
	switch {
	case row.True(ColError):
		return LogprobErrors
	case row.True(ColCorrect):
		return LogprobCorrect
	case row.True(ColCorrectAligned):
		return LogprobAligned
	case row.True(ColCorrectStripped):
		return LogprobStripped
	default:
		return LogprobIncorrect
	}
}

// LogprobToProb converts a model's summed log-probability to a confidence
// percentage, clamping to [0, 100].
func LogprobToProb(logprob float64) float64 {
	p := math.Pow(1000000, logprob)
	if p > 1 {
		p = 1
	}
	if p < 0 {
		p = 0
	}
	return p * 100
}
