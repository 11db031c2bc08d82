package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TenPointScaleRescaled(t *testing.T) {
	assert.Equal(t, 0, Normalize(0))
	assert.Equal(t, 50, Normalize(5))
	assert.Equal(t, 70, Normalize(7))
	assert.Equal(t, 100, Normalize(10))
	assert.Equal(t, 85, Normalize(8.5))
}

func TestNormalize_HundredPointScalePassedThrough(t *testing.T) {
	assert.Equal(t, 11, Normalize(11))
	assert.Equal(t, 75, Normalize(75))
	assert.Equal(t, 100, Normalize(100))
}

func TestNormalize_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, 100, Normalize(250))
	assert.Equal(t, 0, Normalize(-3))
}

func TestDefaultScale_Thresholds(t *testing.T) {
	scale := DefaultScale()

	assert.Equal(t, "A", scale.Grade(100))
	assert.Equal(t, "A", scale.Grade(90))
	assert.Equal(t, "B", scale.Grade(89))
	assert.Equal(t, "B", scale.Grade(75))
	assert.Equal(t, "C", scale.Grade(74))
	assert.Equal(t, "C", scale.Grade(60))
	assert.Equal(t, "D", scale.Grade(59))
	assert.Equal(t, "D", scale.Grade(40))
	assert.Equal(t, "F", scale.Grade(39))
	assert.Equal(t, "F", scale.Grade(0))
}

func TestGrade_TotalAndMonotonic(t *testing.T) {
	scale := DefaultScale()

	rank := map[string]int{"F": 0, "D": 1, "C": 2, "B": 3, "A": 4}
	prev := -1
	for score := 0; score <= 100; score++ {
		label := scale.Grade(score)
		r, known := rank[label]
		require.True(t, known, "score %d produced unknown label %q", score, label)
		assert.GreaterOrEqual(t, r, prev, "grade decreased at score %d", score)
		prev = r
	}
}

func TestGrade_Idempotent(t *testing.T) {
	scale := DefaultScale()
	score := Normalize(7.2)
	assert.Equal(t, scale.Grade(score), scale.Grade(score))
}

func TestGrade_ClampsOutOfRangeInput(t *testing.T) {
	scale := DefaultScale()
	assert.Equal(t, "F", scale.Grade(-10))
	assert.Equal(t, "A", scale.Grade(400))
}

func TestNewScale_RejectsNonTotal(t *testing.T) {
	_, err := NewScale([]Band{{Min: 50, Label: "pass"}})
	assert.Error(t, err)
}

func TestNewScale_RejectsDuplicateThresholds(t *testing.T) {
	_, err := NewScale([]Band{
		{Min: 0, Label: "low"},
		{Min: 0, Label: "also-low"},
	})
	assert.Error(t, err)
}

func TestNewScale_RejectsEmptyLabel(t *testing.T) {
	_, err := NewScale([]Band{{Min: 0, Label: ""}})
	assert.Error(t, err)
}

func TestNewScale_CustomScale(t *testing.T) {
	scale, err := NewScale([]Band{
		{Min: 0, Label: "fail"},
		{Min: 70, Label: "pass"},
	})
	require.NoError(t, err)

	assert.Equal(t, "fail", scale.Grade(69))
	assert.Equal(t, "pass", scale.Grade(70))
	assert.Equal(t, []string{"pass", "fail"}, scale.Labels())
}
