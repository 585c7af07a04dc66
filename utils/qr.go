package utils

import "github.com/skip2/go-qrcode"

// BookingQRCode renders a booking reference as a PNG the guest can show on arrival.
func BookingQRCode(reference string, size int) ([]byte, error) {
	return qrcode.Encode(reference, qrcode.Medium, size)
}
