package mongo

import "testing"

func TestSearchPatternQuotesMetacharacters(t *testing.T) {
	cases := []struct {
		term string
		want string
	}{
		{"acme", "acme"},
		{"(a+)+$", `\(a\+\)\+\$`},
		{"unbalanced(", `unbalanced\(`},
		{"dot.com", `dot\.com`},
	}

	for _, tc := range cases {
		got := searchPattern(tc.term)
		if got.Pattern != tc.want {
			t.Errorf("searchPattern(%q).Pattern = %q, want %q", tc.term, got.Pattern, tc.want)
		}
		if got.Options != "i" {
			t.Errorf("searchPattern(%q).Options = %q, want %q", tc.term, got.Options, "i")
		}
	}
}
