package booking

import (
	"fmt"
	"strings"

	"ubwiza_rentals/config"
	"ubwiza_rentals/constants"
	"ubwiza_rentals/model"
)

const daysPerMonth = 30

// EstimateCost bills whole months of the monthly price, at least one.
func EstimateCost(monthlyPrice float64, nights int) (months int, cost float64) {
	months = nights / daysPerMonth
	if months < 1 {
		months = 1
	}
	return months, monthlyPrice * float64(months)
}

func requestSubject(room *model.Room) string {
	return "Booking Request - " + room.Title
}

func requestBody(b *model.Booking, room *model.Room, cost float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hello %s,\n\n", b.Name)
	fmt.Fprintf(&sb, "Thank you for your booking request at %s!\n\n", constants.BUSINESS_NAME)
	sb.WriteString("Booking Details:\n")
	fmt.Fprintf(&sb, "Reference: %s\n", b.Reference)
	fmt.Fprintf(&sb, "Room: %s\n", room.Title)
	fmt.Fprintf(&sb, "Check-in: %s\n", b.CheckIn)
	fmt.Fprintf(&sb, "Check-out: %s\n", b.CheckOut)
	fmt.Fprintf(&sb, "Guests: %d\n", b.Guests)
	fmt.Fprintf(&sb, "Estimated Cost: %.2f %s\n\n", cost, constants.CURRENCY)
	sb.WriteString("We will review your request and contact you within 24 hours to confirm your booking.\n\n")
	sb.WriteString("Best regards,\n")
	fmt.Fprintf(&sb, "%s Team\n", constants.BUSINESS_NAME)
	fmt.Fprintf(&sb, "Phone: %s\n", constants.BUSINESS_PHONE)
	fmt.Fprintf(&sb, "Email: %s", config.AppConfig.ContactEmail)
	return sb.String()
}
