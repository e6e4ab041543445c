package handler

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestValidator_PlaceBetRequest(t *testing.T) {
	v := NewValidator()

	base := func() PlaceBetRequest {
		return PlaceBetRequest{BetID: "bet-1", UserID: 1, JackpotID: "jackpot-fixed", BetAmount: amount("10.00")}
	}

	tests := []struct {
		name      string
		mutate    func(*PlaceBetRequest)
		wantField string
		wantTag   string
	}{
		{name: "valid", mutate: func(r *PlaceBetRequest) {}},
		{name: "smallest positive amount", mutate: func(r *PlaceBetRequest) { r.BetAmount = amount("0.01") }},
		{name: "nil amount", mutate: func(r *PlaceBetRequest) { r.BetAmount = nil }, wantField: "bet_amount", wantTag: "This field is required"},
		{name: "zero amount", mutate: func(r *PlaceBetRequest) { r.BetAmount = amount("0") }, wantField: "bet_amount", wantTag: "Must be a positive amount"},
		{name: "negative amount", mutate: func(r *PlaceBetRequest) { r.BetAmount = amount("-0.01") }, wantField: "bet_amount", wantTag: "Must be a positive amount"},
		{name: "bet id too long", mutate: func(r *PlaceBetRequest) { r.BetID = strings.Repeat("b", 101) }, wantField: "bet_id", wantTag: "Must be at most 100 characters"},
		{name: "control characters", mutate: func(r *PlaceBetRequest) { r.BetID = "bet\n1" }, wantField: "bet_id", wantTag: "Contains invalid characters"},
		{name: "zero user", mutate: func(r *PlaceBetRequest) { r.UserID = 0 }, wantField: "user_id", wantTag: "This field is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(&req)

			err := v.ValidateStruct(req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fields := FormatValidationError(err)
			assert.Equal(t, tt.wantTag, fields[tt.wantField])
		})
	}
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))

	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", fields["error"])
}
