package response

type AdminStatsResponse struct {
	TotalPayment      float64 `json:"totalPayment"`
	TotalBookingPrice float64 `json:"totalBookingPrice"`
	TotalGuides       int64   `json:"totalGuides"`
	TotalTourist      int64   `json:"totalTourist"`
	TotalPackages     int64   `json:"totalPackages"`
	TotalStories      int64   `json:"totalStories"`
}
