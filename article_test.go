package stockwire_test

import (
	"testing"

	"github.com/stockwire/stockwire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "lowercases and joins without separators",
			title: "RBI Hikes Repo Rate",
			want:  "rbihikesreporate",
		},
		{
			name:  "truncates to eight tokens",
			title: "one two three four five six seven eight nine ten",
			want:  "onetwothreefourfivesixseveneight",
		},
		{
			name:  "collapses irregular whitespace",
			title: "  Sensex\tclimbs   500 points ",
			want:  "sensexclimbs500points",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, stockwire.Fingerprint(tt.title))
		})
	}
}

// The two headlines differ in their fourth and fifth tokens ("25 bps" vs
// "25bps today"), so despite looking like duplicates they produce distinct
// fingerprints. This pins down the token-boundary sensitivity of the key.
func TestFingerprint_TokenBoundarySensitivity(t *testing.T) {
	t.Parallel()

	a := stockwire.Fingerprint("RBI hikes repo rate by 25 bps")
	b := stockwire.Fingerprint("RBI hikes repo rate by 25bps today")

	assert.Equal(t, "rbihikesreporateby25bps", a)
	assert.Equal(t, "rbihikesreporateby25bpstoday", b)
	assert.NotEqual(t, a, b)
}

func TestFingerprint_IdenticalPrefix(t *testing.T) {
	t.Parallel()

	a := stockwire.Fingerprint("Sensex ends flat as IT stocks drag amid global cues")
	b := stockwire.Fingerprint("Sensex ends flat as IT stocks drag amid weak earnings")

	assert.Equal(t, a, b, "titles sharing the first eight tokens must collide")
}

func TestRecordValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid record", func(t *testing.T) {
		t.Parallel()
		r := &stockwire.Record{Title: "Markets rally", Content: "long enough body"}
		require.NoError(t, r.Validate(5))
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		r := &stockwire.Record{Title: "   ", Content: "long enough body"}
		err := r.Validate(5)
		require.Error(t, err)
		assert.Equal(t, stockwire.EINVALID, stockwire.ErrorCode(err))
	})

	t.Run("content under threshold", func(t *testing.T) {
		t.Parallel()
		r := &stockwire.Record{Title: "Markets rally", Content: "shrt"}
		err := r.Validate(5)
		require.Error(t, err)
		assert.Equal(t, stockwire.EINVALID, stockwire.ErrorCode(err))
	})
}
