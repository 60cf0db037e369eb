package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING REFERENCE ====================

// GenerateBookingReference creates a human-readable booking reference
func GenerateBookingReference() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	// Format: TRB-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("TRB-%s-%s-%s", datePart, timePart, randomPart)
}

// GenerateMerchantReference creates the merchant reference sent to the gateway.
// One per payment attempt, so retried payments for a booking stay distinguishable.
func GenerateMerchantReference(bookingRef string) string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	return fmt.Sprintf("%s-P%04d", bookingRef, rand.Intn(10000))
}
