package reminder

import (
	"errors"
	"net/url"
	"strings"
)

// ErrMissingRecipient is returned when a patient has no usable phone number
// for a reminder.
var ErrMissingRecipient = errors.New("no usable phone number for the reminder")

// defaultCountryCode is prepended to national numbers; the practice's patients
// are Italian unless the number carries an explicit international prefix.
const defaultCountryCode = "39"

// NormalizePhone reduces a free-form phone number to the digits-only,
// country-code-prefixed form the messaging deep link expects. Numbers with an
// explicit "+" or "00" international prefix keep their country code; anything
// else is treated as a national number.
func NormalizePhone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	international := strings.HasPrefix(trimmed, "+") || strings.HasPrefix(trimmed, "00")

	var digits strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	if international {
		number = strings.TrimPrefix(number, "00")
	}
	if len(number) < 6 {
		return "", ErrMissingRecipient
	}
	if !international {
		number = defaultCountryCode + number
	}
	return number, nil
}

// ComposeLink builds the pre-filled WhatsApp compose URL for a rendered
// reminder body. Opening the link is the operator's action; composing never
// dispatches anything by itself.
func ComposeLink(phone, body string) (string, error) {
	digits, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(body), nil
}
