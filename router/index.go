package router

import (
	"ubwiza_rentals/config"
	"ubwiza_rentals/handler"
	"ubwiza_rentals/middleware"
	"ubwiza_rentals/model"
	"ubwiza_rentals/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// AppConfig is the fiber configuration shared by the server and its tests.
// Immutable keeps request values valid after the handler returns, which the
// background mail sends rely on.
func AppConfig() fiber.Config {
	return fiber.Config{
		BodyLimit: 4 * 1024 * 1024,
		Immutable: true,
	}
}

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	formLimit := middleware.RateLimit(config.AppConfig.FormRequestsPerMin)
	protected := middleware.Protected(h.Accounts)

	app.Get("/health", h.Health)

	app.Get("/", h.Home)
	app.Get("/rooms", validate.Query[model.RoomFilter]("roomFilter"), h.Rooms)
	app.Get("/rooms/:roomId", validate.GetById("roomId"), h.RoomDetail)
	app.Get("/gallery", h.Gallery)
	app.Get("/about", h.About)
	app.Get("/contact", h.ContactForm)
	app.Post("/contact", formLimit, validate.Body[model.ContactInput]("contactInput"), h.SubmitContact)
	app.Get("/booking", validate.RoomPreselect(), h.BookingForm)
	app.Post("/booking", formLimit, validate.Booking(), h.SubmitBooking)
	app.Get("/booking/success/:reference", h.BookingSuccess)
	app.Get("/booking/success/:reference/qr", h.BookingQR)
	app.Get("/check-availability", validate.Availability(), h.CheckAvailability)

	reports := app.Group("/reports", middleware.StaffOnly(h.Accounts))
	reports.Get("/bookings", h.BookingReport)

	admin := app.Group("/admin")
	admin.Post("/login", formLimit, h.Login)
	admin.Post("/refresh-token", h.RefreshToken)
	admin.Post("/logout", h.Logout)
	admin.Get("/me", protected, h.Me)
	admin.Get("/dashboard", protected, h.Dashboard)

	bookings := admin.Group("/bookings", protected)
	bookings.Get("/", validate.Query[model.BookingFilter]("bookingFilter"), h.ListBookings)
	bookings.Post("/confirm", validate.BulkIds(), h.ConfirmBookings)
	bookings.Post("/cancel", validate.BulkIds(), h.CancelBookings)
	bookings.Get("/:bookingId", validate.GetById("bookingId"), h.GetBooking)
	bookings.Patch("/:bookingId/confirm", validate.GetById("bookingId"), h.ConfirmBooking)
	bookings.Patch("/:bookingId/unconfirm", validate.GetById("bookingId"), h.UnconfirmBooking)
	bookings.Delete("/:bookingId", validate.GetById("bookingId"), h.DeleteBooking)

	rooms := admin.Group("/rooms", protected)
	rooms.Post("/", validate.Body[model.CreateRoomInput]("roomInput"), h.CreateRoom)
	rooms.Put("/:roomId", validate.GetById("roomId"), validate.Body[model.UpdateRoomInput]("roomUpdate"), h.UpdateRoom)
	rooms.Delete("/:roomId", validate.GetById("roomId"), h.DeleteRoom)

	gallery := admin.Group("/gallery", protected)
	gallery.Post("/", validate.Body[model.CreateGalleryImageInput]("galleryInput"), h.AddGalleryImage)
	gallery.Delete("/:imageId", validate.GetById("imageId"), h.DeleteGalleryImage)

	apartments := admin.Group("/apartments", protected)
	apartments.Get("/", h.ListApartments)
	apartments.Post("/", validate.Body[model.ApartmentInput]("apartmentInput"), h.CreateApartment)
	apartments.Put("/:apartmentId", validate.GetById("apartmentId"), validate.Body[model.ApartmentInput]("apartmentInput"), h.UpdateApartment)
	apartments.Delete("/:apartmentId", validate.GetById("apartmentId"), h.DeleteApartment)

	admin.Get("/messages", protected, validate.Query[model.Pagination]("pagination"), h.ListMessages)
	admin.Post("/cloudinary-signature", protected, h.CloudinarySignature)
	admin.Get("/ws/bookings", protected, handler.RequireUpgrade, websocket.New(h.BookingFeed))
}
