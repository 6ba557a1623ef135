package service_test

import (
	"testing"
	"time"

	"nexshop/internal/dto"
	"nexshop/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardNow = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func validCard() *dto.CardDetails {
	return &dto.CardDetails{
		Number: "4111 1111 1111 1111",
		Holder: "LUCAS SILVA",
		Expiry: "12/27",
		CVV:    "123",
	}
}

func TestDetectCardBrand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, service.BrandVisa, service.DetectCardBrand("4111111111111111"))
	assert.Equal(t, service.BrandMastercard, service.DetectCardBrand("5500005555555559"))
	assert.Equal(t, service.BrandAmex, service.DetectCardBrand("371449635398431"))
	assert.Equal(t, service.BrandElo, service.DetectCardBrand("6363680000457013"))
	assert.Equal(t, service.BrandUnknown, service.DetectCardBrand("9999999999999999"))
	assert.Equal(t, service.BrandVisa, service.DetectCardBrand("4111-1111-1111-1111"))
}

func TestValidateCardAccepts(t *testing.T) {
	t.Parallel()

	require.NoError(t, service.ValidateCard(validCard(), cardNow))
}

func TestValidateCardRejections(t *testing.T) {
	t.Parallel()

	t.Run("nil card", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, service.ValidateCard(nil, cardNow))
	})

	t.Run("too few digits", func(t *testing.T) {
		t.Parallel()
		card := validCard()
		card.Number = "4111 1111"
		assert.Error(t, service.ValidateCard(card, cardNow))
	})

	t.Run("missing holder", func(t *testing.T) {
		t.Parallel()
		card := validCard()
		card.Holder = "   "
		assert.Error(t, service.ValidateCard(card, cardNow))
	})

	t.Run("bad expiry format", func(t *testing.T) {
		t.Parallel()
		card := validCard()
		card.Expiry = "2027-12"
		assert.Error(t, service.ValidateCard(card, cardNow))
	})

	t.Run("expired", func(t *testing.T) {
		t.Parallel()
		card := validCard()
		card.Expiry = "02/26"
		assert.Error(t, service.ValidateCard(card, cardNow))
	})

	t.Run("wrong cvv length", func(t *testing.T) {
		t.Parallel()
		card := validCard()
		card.CVV = "12"
		assert.Error(t, service.ValidateCard(card, cardNow))
	})
}

func TestValidateCardExpiryMonthBoundary(t *testing.T) {
	t.Parallel()

	// A card expiring 03/26 is good through the last day of March 2026.
	card := validCard()
	card.Expiry = "03/26"
	assert.NoError(t, service.ValidateCard(card, cardNow))
	assert.Error(t, service.ValidateCard(card, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)))
}

func TestValidateCardAmexNeedsFourDigitCVV(t *testing.T) {
	t.Parallel()

	card := validCard()
	card.Number = "3714 496353 98431"
	card.CVV = "123"
	assert.Error(t, service.ValidateCard(card, cardNow))

	card.CVV = "1234"
	assert.NoError(t, service.ValidateCard(card, cardNow))
}
