package constants

const (
	ROLE_ADMIN = "ADMIN"
	ROLE_STAFF = "STAFF"
)

const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	ERROR_INPUT              = "Invalid input"
	DATA_INPUT_IS_NOT_NUMBER = "Id must be a number"
	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_USERNAME         = "Username does not exist"
	INVALID_PASSWORD         = "Password is incorrect"
	ACCOUNT_NOT_ACTIVE       = "Account is disabled"
	NOT_STAFF                = "Staff access only"
	TOO_MANY_REQUESTS        = "Too many requests, please try again later"
)

const (
	ROOM_NOT_FOUND      = "Room not found"
	BOOKING_NOT_FOUND   = "Booking not found"
	APARTMENT_NOT_FOUND = "Apartment not found"
	IMAGE_NOT_FOUND     = "Gallery image not found"
	INVALID_DATE_FORMAT = "Invalid date format"
	INVALID_REQUEST     = "Invalid request"
	BOOKING_FORM_ERROR  = "Please correct the errors below."
	CONTACT_SUCCESS     = "Thank you for your message! We will get back to you soon."
)

const (
	ROOM_AVAILABLE     = "Room is available for these dates."
	ROOM_NOT_AVAILABLE = "Room is not available for the selected dates."
)

const DATE_LAYOUT = "2006-01-02"

const (
	BUSINESS_NAME  = "UBWIZA Apartment"
	BUSINESS_PHONE = "+250 791 010 558"
	CURRENCY       = "RWF"
)
