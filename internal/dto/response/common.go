package response

// InsertResponse reports the generated document id of a create.
type InsertResponse struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResponse reports how many documents a partial update touched.
type UpdateResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResponse reports the hard-delete count.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
