// Copyright (C) 2024 The jot Authors. All Rights Reserved.

package query_test

import (
	"strings"
	"testing"

	"github.com/arbelos/jot/ast"
	"github.com/arbelos/jot/query"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {"x": 1},
    {"x": 2}
  ],
  "y": {
    "hello": "there"
  },
  "dup": 1,
  "dup": 2
}`

func TestPath(t *testing.T) {
	v, err := ast.Parse(strings.NewReader(testJSON))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, nil, true},
		{"WrongType", []any{11}, nil, true},
		{"IndexIntoLeaf", []any{"dup", 0}, nil, true},

		{"ArrayPos", []any{"list", 1, "x"}, ast.Number(2), false},
		{"ArrayNeg", []any{"list", -2, "x"}, ast.Number(1), false},
		{"ArrayRange", []any{"list", 25}, nil, true},
		{"ObjPath", []any{"y", "hello"}, ast.String("there"), false},

		// Duplicate keys resolve to the first occurrence.
		{"DupKey", []any{"dup"}, ast.Number(1), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := query.Path(v, tc.path...)
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
					return
				}
				t.Fatalf("Path: unexpected error: %v", err)
			} else if tc.fail {
				t.Fatalf("Path: got %+v, want error", got)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Wrong result (-want, +got):\n%s", diff)
			}
		})
	}
}
