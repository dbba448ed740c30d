package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompose(t *testing.T) {
	cases := []struct {
		name      string
		sequences [][]string
		count     int
		want      []string
	}{
		{
			name:      "modulo wrap",
			sequences: [][]string{{"a", "b"}, {"x"}},
			count:     3,
			want:      []string{"ax", "bx", "ax"},
		},
		{
			name:      "empty sequence contributes nothing",
			sequences: [][]string{{"Hi "}, {}, {"1", "2"}},
			count:     3,
			want:      []string{"Hi 1", "Hi 2", "Hi 1"},
		},
		{
			name:      "no sequences",
			sequences: nil,
			count:     2,
			want:      []string{"", ""},
		},
		{
			name:      "zero count",
			sequences: [][]string{{"a"}},
			count:     0,
			want:      []string{},
		},
		{
			name:      "order matters",
			sequences: [][]string{{"x"}, {"a", "b"}},
			count:     2,
			want:      []string{"xa", "xb"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compose(tc.sequences, tc.count)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("compose mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
