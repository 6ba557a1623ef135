package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nexshop/internal/dto"
)

// Card validation mirrors what the checkout form enforces client-side:
// digit/length patterns only. Nothing here talks to a gateway and no card
// data leaves the process.

type CardBrand string

const (
	BrandVisa       CardBrand = "visa"
	BrandMastercard CardBrand = "mastercard"
	BrandAmex       CardBrand = "amex"
	BrandElo        CardBrand = "elo"
	BrandUnknown    CardBrand = "unknown"
)

func cardDigits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DetectCardBrand guesses the brand by number prefix.
func DetectCardBrand(number string) CardBrand {
	digits := cardDigits(number)
	switch {
	case strings.HasPrefix(digits, "4"):
		return BrandVisa
	case len(digits) >= 2 && digits[:2] >= "51" && digits[:2] <= "55":
		return BrandMastercard
	case strings.HasPrefix(digits, "34") || strings.HasPrefix(digits, "37"):
		return BrandAmex
	case strings.HasPrefix(digits, "636368") || strings.HasPrefix(digits, "438935") || strings.HasPrefix(digits, "504175"):
		return BrandElo
	default:
		return BrandUnknown
	}
}

// ValidateCard runs the pattern checks. now anchors the expiry comparison.
func ValidateCard(card *dto.CardDetails, now time.Time) error {
	if card == nil {
		return fmt.Errorf("card details required")
	}

	digits := cardDigits(card.Number)
	if len(digits) < 13 || len(digits) > 19 {
		return fmt.Errorf("card number must have 13-19 digits")
	}

	if strings.TrimSpace(card.Holder) == "" {
		return fmt.Errorf("card holder name required")
	}

	month, year, err := parseExpiry(card.Expiry)
	if err != nil {
		return err
	}
	endOfMonth := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	if !now.Before(endOfMonth) {
		return fmt.Errorf("card expired")
	}

	cvvLen := 3
	if DetectCardBrand(card.Number) == BrandAmex {
		cvvLen = 4
	}
	if len(cardDigits(card.CVV)) != cvvLen {
		return fmt.Errorf("cvv must have %d digits", cvvLen)
	}

	return nil
}

func parseExpiry(expiry string) (month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(expiry), "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("expiry must be MM/YY")
	}
	month, err = strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid expiry month")
	}
	yy, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid expiry year")
	}
	return month, 2000 + yy, nil
}
