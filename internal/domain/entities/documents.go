package entities

import (
	"net/mail"
	"strings"

	"gestao_os/internal/domain/faults"
)

// Brazilian registration rules shared by the client and technician guards.
//
// Normalized storage forms:
//   - CNPJ, CEP and phone: digits only
//   - e-mail: lower-cased
//   - state code: upper-cased
//
// Formatting back to display form happens in FormatCNPJ/FormatPostalCode.

const emailMaxLen = 100

// NormalizeCNPJ strips punctuation and validates the 14-digit registration
// number. Check-digit arithmetic is not verified here.
func NormalizeCNPJ(raw string) (string, error) {
	digits := onlyDigits(raw)
	if len(digits) != 14 {
		return "", faults.NewArgument("CNPJ", "CNPJ must have exactly 14 digits")
	}
	if allSameDigit(digits) {
		return "", faults.NewArgument("CNPJ", "CNPJ digits cannot be all identical")
	}
	return digits, nil
}

// FormatCNPJ renders stored digits as 12.345.678/0001-90.
func FormatCNPJ(digits string) string {
	if len(digits) != 14 {
		return digits
	}
	return digits[0:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:14]
}

// NormalizePostalCode strips punctuation and validates the 8-digit CEP.
func NormalizePostalCode(raw string) (string, error) {
	digits := onlyDigits(raw)
	if len(digits) != 8 {
		return "", faults.NewArgument("PostalCode", "postal code must have exactly 8 digits")
	}
	return digits, nil
}

// FormatPostalCode renders stored digits as 12345-678.
func FormatPostalCode(digits string) string {
	if len(digits) != 8 {
		return digits
	}
	return digits[0:5] + "-" + digits[5:8]
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", faults.NewArgument("Email", "e-mail is required")
	}
	if len(email) > emailMaxLen {
		return "", faults.NewArgument("Email", "e-mail must have at most 100 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", faults.NewArgument("Email", "e-mail is not valid")
	}
	return email, nil
}

// normalizePhone accepts an empty phone; when present it must hold 10 or 11
// digits after stripping (landline or mobile with DDD).
func normalizePhone(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	digits := onlyDigits(raw)
	if len(digits) < 10 || len(digits) > 11 {
		return "", faults.NewArgument("Phone", "phone must have 10 or 11 digits")
	}
	return digits, nil
}

func normalizeState(raw string) (string, error) {
	state := strings.ToUpper(strings.TrimSpace(raw))
	if len(state) != 2 || !isLetters(state) {
		return "", faults.NewArgument("State", "state must be a 2-letter code")
	}
	return state, nil
}

func isLetters(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
