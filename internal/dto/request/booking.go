package request

type CreateBookingRequest struct {
	PackageID    string  `json:"packageId"`
	PackageName  string  `json:"packageName"`
	TouristEmail string  `json:"touristEmail" validate:"required,email"`
	TouristName  string  `json:"touristName"`
	GuideID      string  `json:"guideId" validate:"required"`
	Price        float64 `json:"price" validate:"required,gt=0"`
}

// UpdateBookingStatusRequest deliberately takes any non-empty string;
// the status set is open and writes are lower-cased downstream.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
