package negotiation

import (
	"database/sql"
	"testing"

	entity "bibtrade/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateMidpoint(t *testing.T) {
	out, err := Evaluate(1500, 2000)
	assert.NoError(t, err)
	assert.True(t, out.Matched)
	assert.Equal(t, 1750, out.Price)
}

func TestEvaluateHalfRoundsUp(t *testing.T) {
	// (1500+2001)/2 = 1750.5 -> 1751
	out, err := Evaluate(1500, 2001)
	assert.NoError(t, err)
	assert.True(t, out.Matched)
	assert.Equal(t, 1751, out.Price)
}

func TestEvaluateNoMatch(t *testing.T) {
	out, err := Evaluate(2000, 1500)
	assert.NoError(t, err)
	assert.False(t, out.Matched)
	assert.Equal(t, 0, out.Price)
}

func TestEvaluateEqualBoundary(t *testing.T) {
	out, err := Evaluate(1500, 1500)
	assert.NoError(t, err)
	assert.True(t, out.Matched)
	assert.Equal(t, 1500, out.Price)
}

func TestEvaluateInvalidInput(t *testing.T) {
	_, err := Evaluate(0, 1500)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Evaluate(1500, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Evaluate(-100, 200)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluatePriceWithinBounds(t *testing.T) {
	for floor := 1; floor <= 50; floor++ {
		for ceiling := floor; ceiling <= 50; ceiling++ {
			out, err := Evaluate(floor, ceiling)
			assert.NoError(t, err)
			assert.True(t, out.Matched)
			assert.GreaterOrEqual(t, out.Price, floor)
			assert.LessOrEqual(t, out.Price, ceiling)
		}
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	first, err := Evaluate(1234, 5678)
	assert.NoError(t, err)
	for i := 0; i < 100; i++ {
		again, err := Evaluate(1234, 5678)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFloorForDefaultsToAskingPrice(t *testing.T) {
	l := &entity.Listing{AskingPrice: 1800}
	assert.Equal(t, 1800, FloorFor(l))

	l.MinPrice = sql.NullInt64{Int64: 1500, Valid: true}
	assert.Equal(t, 1500, FloorFor(l))
}
