package ai

import (
	"context"
	"math"
	"reflect"
	"testing"
)

func TestLexicalEmbedDeterministic(t *testing.T) {
	e := NewLexicalEmbedder()
	ctx := context.Background()

	a, err := e.Embed(ctx, "budget planning meeting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := e.Embed(ctx, "budget planning meeting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same input produced different vectors")
	}
}

func TestLexicalEmbedNormalized(t *testing.T) {
	e := NewLexicalEmbedder()

	vec, err := e.Embed(context.Background(), "alpha bravo charlie delta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if math.Abs(norm-1) > 1e-5 {
		t.Fatalf("expected unit vector, squared norm = %v", norm)
	}
}

func TestLexicalEmbedEmptyText(t *testing.T) {
	e := NewLexicalEmbedder()

	vec, err := e.Embed(context.Background(), "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range vec {
		if v != 0 {
			t.Fatal("expected zero vector for empty text")
		}
	}
}

func TestLexicalEmbedCaseAndPunctuationInsensitive(t *testing.T) {
	e := NewLexicalEmbedder()
	ctx := context.Background()

	a, _ := e.Embed(ctx, "Hello, World!")
	b, _ := e.Embed(ctx, "hello world")
	if !reflect.DeepEqual(a, b) {
		t.Fatal("tokenization should ignore case and punctuation")
	}
}
