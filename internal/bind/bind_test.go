package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lnmap/pkg/errors"
)

type rangeArgs struct {
	MinRank int    `json:"min_rank" validate:"min=1,max=10,ltefield=MaxRank"`
	MaxRank int    `json:"max_rank" validate:"min=1,max=10"`
	Limit   int    `json:"limit" validate:"min=1,max=50"`
	Note    string `json:"note,omitempty" validate:"omitempty,max=5"`
}

func (a *rangeArgs) SetDefaults() {
	a.MinRank = 8
	a.MaxRank = 10
	a.Limit = 20
}

type keyArgs struct {
	Pubkeys []string `json:"pubkeys" validate:"min=2,max=10,dive,pubkey"`
}

const pk = "03864ef025fde8fb587d989186ce6a4a186895ee44a926bfc370e2c366597a3f8f"

func TestDecodeAppliesDefaults(t *testing.T) {
	for _, raw := range []string{"", "null", "{}", "  {} \n"} {
		got, err := Decode[rangeArgs]([]byte(raw))
		require.NoError(t, err, raw)
		assert.Equal(t, rangeArgs{MinRank: 8, MaxRank: 10, Limit: 20}, got)
	}

	got, err := Decode[rangeArgs]([]byte(`{"limit":5}`))
	require.NoError(t, err)
	assert.Equal(t, 5, got.Limit)
	assert.Equal(t, 8, got.MinRank)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
		msg   string
	}{
		{"unknown field", `{"rank":3}`, "", `unknown field "rank"`},
		{"trailing data", `{} {}`, "", "unexpected trailing data"},
		{"malformed", `{"limit":`, "", "invalid arguments"},
		{"explicit zero", `{"limit":0}`, "limit", "limit must be at least 1"},
		{"above max", `{"max_rank":11}`, "max_rank", "max_rank must be at most 10"},
		{"inverted range", `{"min_rank":9,"max_rank":8}`, "min_rank", "min_rank must be less than or equal to"},
		{"string too long", `{"note":"abcdefg"}`, "note", "note must be at most 5"},
		{"wrong type", `{"limit":"ten"}`, "", "invalid arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[rangeArgs]([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			var verr *errors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Contains(t, verr.Message, tt.msg)
		})
	}
}

func TestPubkeyValidation(t *testing.T) {
	_, err := Decode[keyArgs]([]byte(`{"pubkeys":["` + pk + `","` + pk + `"]}`))
	require.NoError(t, err)

	_, err = Decode[keyArgs]([]byte(`{"pubkeys":["` + pk + `"]}`))
	require.Error(t, err)

	_, err = Decode[keyArgs]([]byte(`{"pubkeys":["` + pk + `","03ABC"]}`))
	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "pubkeys[1]", verr.Field)
	assert.Equal(t, "pubkeys[1] must be a 66-character lowercase hex public key", verr.Message)
}

func TestStructInvalidTarget(t *testing.T) {
	err := Struct(42)
	require.Error(t, err)
	assert.EqualError(t, err, "validation failed: validation error")
}
