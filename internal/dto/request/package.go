package request

type CreatePackageRequest struct {
	TripTitle   string   `json:"tripTitle" validate:"required"`
	TourType    string   `json:"tourType" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// PackageListRequest is bound from query parameters, not a JSON body.
type PackageListRequest struct {
	Search   string
	Sort     string
	Category string
	Page     int
	Limit    int
}
