package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nagarsetu/internal/domain/issue"
	vo "nagarsetu/internal/domain/issue/valueobjects"
)

func testLocation() vo.Location {
	return vo.ReconstructLocation(
		"12 MG Road",
		12.9716,
		77.5946,
		"Bengaluru",
		"Karnataka",
		"560001",
		"MG Road",
		"Near Metro Station",
	)
}

func newTestIssue(t *testing.T, id uint, status vo.IssueStatus, reporterID *uint) *issue.Issue {
	t.Helper()

	created := time.Now().Add(-24 * time.Hour)
	is, err := issue.ReconstructIssue(
		id,
		"NAGARSETU-250830-1234ABCD",
		"Large pothole on MG Road",
		"Deep pothole near the metro station entrance",
		1,
		vo.PriorityHigh,
		status,
		testLocation(),
		reporterID,
		nil,
		nil,
		nil,
		created,
		created,
	)
	require.NoError(t, err)
	return is
}

func uintPtr(v uint) *uint {
	return &v
}
