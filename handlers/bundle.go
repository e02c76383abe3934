package handlers

// HandlerBundle groups the endpoint handlers handed to route registration.
type HandlerBundle struct {
	Catalog       *CatalogHandler
	Booking       *BookingHandler
	Reservations  *ReservationHandler
	Notifications *NotificationHandler
	Users         *UserHandler
}
