// Copyright (C) 2024 The jot Authors. All Rights Reserved.

package jot_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arbelos/jot"
)

func benchInput(members int) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < members; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `"key-%04d": [%d, %d.5, true, null, "value é %d"]`, i, i, i, i)
	}
	sb.WriteByte('}')
	return sb.String()
}

func BenchmarkTokenize(b *testing.B) {
	input := benchInput(500)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := jot.Tokenize(strings.NewReader(input)); err != nil {
			b.Fatalf("Tokenize failed: %v", err)
		}
	}
}
