package betqueue

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/JackpotEngine_Go/internal/domain"
)

// betMessage is the queued form of a bet. The user ID travels in the key.
type betMessage struct {
	BetID     string          `json:"bet_id"`
	JackpotID string          `json:"jackpot_id"`
	BetAmount decimal.Decimal `json:"bet_amount"`
}

// MessageKey is "<userID>-<betID>"
func MessageKey(bet domain.BetRequest) string {
	return strconv.FormatInt(bet.UserID, 10) + keySeparator + bet.BetID
}

// EncodeBet returns the key and value written to the topic
func EncodeBet(bet domain.BetRequest) ([]byte, []byte, error) {
	value, err := json.Marshal(betMessage{
		BetID:     bet.BetID,
		JackpotID: bet.JackpotID,
		BetAmount: bet.BetAmount,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrContextMarshalBet, err)
	}
	return []byte(MessageKey(bet)), value, nil
}

// DecodeBet rebuilds a bet from a message. The bet ID may itself contain the
// separator, so the user ID is whatever precedes "-<betID>".
func DecodeBet(key, value []byte) (domain.BetRequest, error) {
	var msg betMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		return domain.BetRequest{}, fmt.Errorf("%w: %s: %w", domain.ErrValidation, ErrMsgUndecodableValue, err)
	}

	k := string(key)
	suffix := keySeparator + msg.BetID
	if msg.BetID == "" || !strings.HasSuffix(k, suffix) {
		return domain.BetRequest{}, fmt.Errorf("%w: %s: %q", domain.ErrValidation, ErrMsgInvalidKey, k)
	}

	userID, err := strconv.ParseInt(strings.TrimSuffix(k, suffix), 10, 64)
	if err != nil || userID <= 0 {
		return domain.BetRequest{}, fmt.Errorf("%w: %s: %q", domain.ErrValidation, ErrMsgInvalidKey, k)
	}

	return domain.BetRequest{
		BetID:     msg.BetID,
		UserID:    userID,
		JackpotID: msg.JackpotID,
		BetAmount: msg.BetAmount,
	}, nil
}
