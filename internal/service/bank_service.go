package service

import (
	"math/rand"
	"slices"
	"sort"
	"sync"

	"github.com/papergen/papergen-backend/internal/model"
)

// BankService filters and samples caller-supplied question banks and
// combines them with freshly generated questions. Pure in-memory record
// shuffling; input records are never mutated.
type BankService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewBankService creates a BankService drawing randomness from rng.
// Tests pass a fixed-seed source for reproducible sampling.
func NewBankService(rng *rand.Rand) *BankService {
	return &BankService{rng: rng}
}

// Select retains bank records matching the requested topic set,
// difficulty and type set, then uniformly samples down to the requested
// count when the filtered pool is larger.
func (s *BankService) Select(bank []model.Question, p model.GenerationParams) []model.Question {
	filtered := make([]model.Question, 0, len(bank))
	for _, q := range bank {
		if len(p.Topics) > 0 && !slices.Contains(p.Topics, q.Topic) {
			continue
		}
		if p.Difficulty != model.DifficultyAny && q.Difficulty != p.Difficulty {
			continue
		}
		if len(p.QuestionTypes) > 0 && !slices.Contains(p.QuestionTypes, q.Type) {
			continue
		}
		filtered = append(filtered, q)
	}

	if len(filtered) > p.NumQuestions {
		return s.sample(filtered, p.NumQuestions)
	}
	return filtered
}

// Combine concatenates generated and selected questions, caps the result
// to total via uniform sampling without replacement, and orders it by
// (topic, type) ascending. The sort is stable; equal pairs keep their
// sampled order.
func (s *BankService) Combine(generated, selected []model.Question, total int) []model.Question {
	combined := make([]model.Question, 0, len(generated)+len(selected))
	combined = append(combined, generated...)
	combined = append(combined, selected...)

	if len(combined) > total {
		combined = s.sample(combined, total)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		if combined[i].Topic != combined[j].Topic {
			return combined[i].Topic < combined[j].Topic
		}
		return combined[i].Type < combined[j].Type
	})

	return combined
}

// sample draws n records uniformly without replacement.
func (s *BankService) sample(pool []model.Question, n int) []model.Question {
	s.mu.Lock()
	perm := s.rng.Perm(len(pool))
	s.mu.Unlock()

	out := make([]model.Question, n)
	for i := 0; i < n; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}
