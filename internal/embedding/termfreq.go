package embedding

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxVocabulary caps the fallback vector dimension, keeping the most frequent
// terms across the batch.
const maxVocabulary = 5000

var termRe = regexp.MustCompile(`[a-z0-9]{2,}`)

// TermFreqEmbedder is the degraded backend used when no semantic model is
// available: TF-IDF weighted unigram+bigram vectors fit on the batch itself.
// Same call signature and unit-length output as the semantic embedder, so the
// ranking engine never needs to know which one served the request. Because
// the vocabulary is fit per batch, vectors from different Encode calls are
// not comparable to each other.
type TermFreqEmbedder struct{}

// NewTermFreqEmbedder creates the fallback embedder.
func NewTermFreqEmbedder() *TermFreqEmbedder {
	return &TermFreqEmbedder{}
}

// Encode vectorizes all texts against a vocabulary built from this batch.
// Deterministic: the vocabulary is ordered by descending corpus frequency
// with alphabetical tie-breaks.
func (e *TermFreqEmbedder) Encode(_ context.Context, texts []string) ([][]float64, error) {
	docs := make([][]string, len(texts))
	corpusFreq := make(map[string]int)
	docFreq := make(map[string]int)

	for i, text := range texts {
		terms := tokenizeTerms(text)
		docs[i] = terms
		seen := make(map[string]bool, len(terms))
		for _, t := range terms {
			corpusFreq[t]++
			if !seen[t] {
				seen[t] = true
				docFreq[t]++
			}
		}
	}

	vocab := buildVocabulary(corpusFreq)

	n := float64(len(texts))
	idf := make([]float64, len(vocab.terms))
	for i, term := range vocab.terms {
		// Smoothed idf, matching the usual TF-IDF formulation.
		idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	vectors := make([][]float64, len(texts))
	for i, terms := range docs {
		v := make([]float64, len(vocab.terms))
		for _, t := range terms {
			if j, ok := vocab.index[t]; ok {
				v[j]++
			}
		}
		for j := range v {
			v[j] *= idf[j]
		}
		normalizeUnit(v)
		vectors[i] = v
	}

	return vectors, nil
}

// tokenizeTerms extracts lowercase unigrams and bigrams.
func tokenizeTerms(text string) []string {
	words := termRe.FindAllString(strings.ToLower(text), -1)
	terms := make([]string, 0, 2*len(words))
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

type vocabulary struct {
	terms []string
	index map[string]int
}

func buildVocabulary(corpusFreq map[string]int) vocabulary {
	terms := make([]string, 0, len(corpusFreq))
	for t := range corpusFreq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if corpusFreq[terms[i]] != corpusFreq[terms[j]] {
			return corpusFreq[terms[i]] > corpusFreq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxVocabulary {
		terms = terms[:maxVocabulary]
	}

	index := make(map[string]int, len(terms))
	for i, t := range terms {
		index[t] = i
	}
	return vocabulary{terms: terms, index: index}
}
