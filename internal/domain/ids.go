package domain

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const confirmationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewBookingID генерирует уникальный идентификатор бронирования вида
// APPT-YYYYMMDD-XXXXXXXX, где суффикс — случайная часть uuid.
// Датированный префикс удобен для поиска по логам, уникальность даёт суффикс.
func NewBookingID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("APPT-%s-%s", now.Format("20060102"), suffix)
}

// NewConfirmationCode генерирует короткий код подтверждения для пациента.
// Код не является идентификатором бронирования и не должен из него выводиться.
func NewConfirmationCode() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand практически не отказывает; fallback на uuid
		return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	}
	code := make([]byte, len(buf))
	for i, b := range buf {
		code[i] = confirmationCodeAlphabet[int(b)%len(confirmationCodeAlphabet)]
	}
	return string(code)
}
