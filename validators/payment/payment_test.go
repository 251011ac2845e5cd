package paymentValidator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCardNumber(t *testing.T) {
	assert.True(t, ValidateCardNumber("4111111111111111"))
	assert.True(t, ValidateCardNumber("4111 1111 1111 1111"))

	assert.False(t, ValidateCardNumber("411111111111111"))   // 15 digits
	assert.False(t, ValidateCardNumber("41111111111111112")) // 17 digits
	assert.False(t, ValidateCardNumber("4111-1111-1111-1111"))
	assert.False(t, ValidateCardNumber("abcd111111111111"))
	assert.False(t, ValidateCardNumber(""))
}

func TestValidateCardExpiry(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	assert.True(t, ValidateCardExpiry("08/26", now)) // current month passes
	assert.True(t, ValidateCardExpiry("12/26", now))
	assert.True(t, ValidateCardExpiry("01/27", now))

	assert.False(t, ValidateCardExpiry("07/26", now)) // last month
	assert.False(t, ValidateCardExpiry("12/25", now)) // last year
	assert.False(t, ValidateCardExpiry("13/27", now)) // no such month
	assert.False(t, ValidateCardExpiry("00/27", now))
	assert.False(t, ValidateCardExpiry("0827", now))
	assert.False(t, ValidateCardExpiry("8/27", now)) // must be MM/YY
	assert.False(t, ValidateCardExpiry("", now))
}

func TestValidateCardCVV(t *testing.T) {
	assert.True(t, ValidateCardCVV("123"))
	assert.True(t, ValidateCardCVV("1234"))

	assert.False(t, ValidateCardCVV("12"))
	assert.False(t, ValidateCardCVV("12345"))
	assert.False(t, ValidateCardCVV("12a"))
	assert.False(t, ValidateCardCVV(""))
}
