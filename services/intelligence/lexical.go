package ai

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

const defaultLexicalDim = 256

// LexicalEmbedder maps text to a hashed term-frequency vector. It needs no
// network, is fully deterministic, and serves as the fallback when no Gemini
// key is configured.
type LexicalEmbedder struct {
	Dim int
}

func NewLexicalEmbedder() *LexicalEmbedder {
	return &LexicalEmbedder{Dim: defaultLexicalDim}
}

func (e *LexicalEmbedder) dim() int {
	if e.Dim > 0 {
		return e.Dim
	}
	return defaultLexicalDim
}

func (e *LexicalEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim())
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[int(h.Sum32())%len(vec)]++
	}

	// L2-normalize so dot products are cosine similarities in [0,1] for
	// non-negative term-frequency vectors.
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
