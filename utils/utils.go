package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateCertificateNumber builds a printable certificate serial, e.g.
// SFC-9F1C2B7A.
func GenerateCertificateNumber() string {
	id := uuid.New().String()
	return "SFC-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
