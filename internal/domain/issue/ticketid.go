package issue

import (
	"context"
	"fmt"
	"time"

	"nagarsetu/internal/shared/biztime"
	"nagarsetu/internal/shared/id"
)

// TicketIDGenerator produces human-readable ticket identifiers.
// Generated values are not unique by construction; callers must verify
// uniqueness against storage and retry on collision.
type TicketIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

const ticketIDPrefix = "NAGARSETU"

// FormattedTicketIDGenerator produces IDs of the form
// NAGARSETU-YYMMDD-TTTTRRRR where YYMMDD is the business-timezone date,
// TTTT the last four decimal digits of the Unix millisecond clock, and
// RRRR four uppercase hex characters from two random bytes.
type FormattedTicketIDGenerator struct{}

func NewFormattedTicketIDGenerator() *FormattedTicketIDGenerator {
	return &FormattedTicketIDGenerator{}
}

func (g *FormattedTicketIDGenerator) Generate(ctx context.Context) (string, error) {
	now := time.Now()
	datePart := now.In(biztime.Location()).Format("060102")
	timePart := now.UnixMilli() % 10000

	randomPart, err := id.RandomHexUpper(2)
	if err != nil {
		return "", fmt.Errorf("failed to generate ticket ID suffix: %w", err)
	}

	return fmt.Sprintf("%s-%s-%04d%s", ticketIDPrefix, datePart, timePart, randomPart), nil
}
