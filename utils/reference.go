package utils

import "math/rand"

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// BookingReference generates a booking reference of the form "BK-" followed by
// six uppercase base-36 characters.
func BookingReference() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = referenceAlphabet[rand.Intn(len(referenceAlphabet))]
	}
	return "BK-" + string(b)
}
