/**
 * Copyright (C) Couchbase, Inc 2025 - All Rights Reserved
 * Unauthorized copying of this file, via any medium is strictly prohibited
 * Proprietary and confidential
 */
package timeprovider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFakeTimeProviderAdvanceBy(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	provider := NewFakeTimeProvider(start)
	require.Equal(t, start, provider.Now())

	for i := 0; i < 125; i++ {
		provider.AdvanceTimeBy(time.Millisecond)
	}

	require.Equal(t, start.Add(125*time.Millisecond), provider.Now())
}

func TestFakeTimeProviderAdvanceTo(t *testing.T) {
	provider := NewFakeTimeProvider(time.Time{})

	next := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	provider.AdvanceTimeTo(next)

	require.Equal(t, next, provider.Now())
}

func TestCurrentTimeProvider(t *testing.T) {
	before := time.Now()
	now := CurrentTimeProvider{}.Now()

	require.False(t, now.Before(before))
}
