package response

// BookingStatusResponse tells the caller whether the status write
// actually changed the document.
type BookingStatusResponse struct {
	Updated bool `json:"updated"`
}
