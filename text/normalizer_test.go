package text_test

import (
	"regexp"
	"testing"

	"github.com/stockwire/stockwire/text"
	"github.com/stretchr/testify/assert"
)

var whitelistRe = regexp.MustCompile(`^[\w\s.,!?:;\-()]*$`)

func TestNormalize(t *testing.T) {
	t.Parallel()

	n := text.NewNormalizer()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "collapses whitespace runs",
			raw:  "Sensex\tclimbs\n\n500   points",
			want: "Sensex climbs 500 points",
		},
		{
			name: "strips characters outside the whitelist",
			raw:  `Shares rose 5% — "strong" quarter | said CEO @ Mumbai`,
			want: "Shares rose 5 strong quarter said CEO Mumbai",
		},
		{
			name: "keeps whitelisted punctuation",
			raw:  "Really? Yes: profits up (again) - and how!",
			want: "Really? Yes: profits up (again) - and how!",
		},
		{
			name: "removes space before sentence punctuation",
			raw:  "Profits rose . Margins fell ,  slightly .",
			want: "Profits rose. Margins fell, slightly.",
		},
		{
			name: "strips trailing read-more boilerplate",
			raw:  "The rupee weakened against the dollar. Read more at our website and subscribe today",
			want: "The rupee weakened against the dollar.",
		},
		{
			name: "strips also-read tail case-insensitively",
			raw:  "Nifty closed above 24,000. ALSO READ: top gainers this week",
			want: "Nifty closed above 24,000.",
		},
		{
			name: "removes advertisement token without truncating",
			raw:  "Markets opened higher. Advertisement Banks led the gains.",
			want: "Markets opened higher. Banks led the gains.",
		},
		{
			name: "trims surrounding whitespace",
			raw:  "   body text   ",
			want: "body text",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, n.Normalize(tt.raw))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	n := text.NewNormalizer()

	inputs := []string{
		"Sensex\tclimbs\n\n500   points",
		`Shares rose 5% — "strong" quarter | said CEO`,
		"Profits rose . Margins fell ,  slightly .",
		"The rupee weakened. Read more at our website",
		"Plain already-clean sentence with (brackets) and - dashes.",
		"",
	}

	for _, raw := range inputs {
		once := n.Normalize(raw)
		twice := n.Normalize(once)
		assert.Equal(t, once, twice, "normalize must be idempotent for %q", raw)
	}
}

func TestNormalize_WhitelistInvariant(t *testing.T) {
	t.Parallel()

	n := text.NewNormalizer()

	inputs := []string{
		"pipes | and € symbols © everywhere…",
		"quotes \"double\" and 'single' and <tags>",
		"already clean text.",
	}

	for _, raw := range inputs {
		out := n.Normalize(raw)
		assert.True(t, whitelistRe.MatchString(out),
			"output %q contains characters outside the whitelist", out)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	t.Parallel()

	n := text.NewNormalizer()
	raw := "Sensex   rallies!  Read more here"

	first := n.Normalize(raw)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, n.Normalize(raw))
	}
}
