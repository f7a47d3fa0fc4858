package issue

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ticketIDPattern = regexp.MustCompile(`^NAGARSETU-\d{6}-\d{4}[0-9A-F]{4}$`)

func TestFormattedTicketIDGenerator_Format(t *testing.T) {
	gen := NewFormattedTicketIDGenerator()

	for i := 0; i < 50; i++ {
		ticketID, err := gen.Generate(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, ticketIDPattern, ticketID)
		assert.Len(t, ticketID, len("NAGARSETU-")+6+1+8)
	}
}

func TestFormattedTicketIDGenerator_RandomSuffixVaries(t *testing.T) {
	gen := NewFormattedTicketIDGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ticketID, err := gen.Generate(context.Background())
		require.NoError(t, err)
		seen[ticketID] = true
	}

	// Millisecond digits plus two random bytes make repeats in a tight
	// loop overwhelmingly unlikely.
	assert.Greater(t, len(seen), 90)
}
