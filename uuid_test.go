package civil_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	civil "github.com/civilkit/go-civil"
)

func TestUUIDRoundTrip(t *testing.T) {
	dt := civil.NewDateTime(2024, 6, 15, 12, 30, 45)
	dt.Milli = 123

	id := dt.UUID()
	assert.Equal(t, uuid.Version(7), id.Version())

	got, ok := civil.FromUUID(id)
	require.True(t, ok)
	assert.Equal(t, dt, got)
}

func TestUUIDRandomBitsVary(t *testing.T) {
	dt := civil.NewDateTime(2024, 6, 15, 12, 30, 45)

	a, b := dt.UUID(), dt.UUID()
	assert.NotEqual(t, a, b)

	// The timestamp bits agree even though the random bits differ.
	ga, ok := civil.FromUUID(a)
	require.True(t, ok)
	gb, ok := civil.FromUUID(b)
	require.True(t, ok)
	assert.Equal(t, ga, gb)
}

func TestFromUUIDRejectsUntimed(t *testing.T) {
	_, ok := civil.FromUUID(uuid.New()) // version 4
	assert.False(t, ok)

	_, ok = civil.FromUUID(uuid.Nil)
	assert.False(t, ok)
}
