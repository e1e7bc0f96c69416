package dto

// CreateTicketRequest is the only cross-entity write payload; the numeric
// fields coerce from strings for form compatibility.
type CreateTicketRequest struct {
	EventID    FlexInt `json:"event_id" validate:"required,min=1"`
	Username   string  `json:"username" validate:"required,min=2"`
	Email      string  `json:"email" validate:"required,email"`
	Quantity   FlexInt `json:"quantity" validate:"required,min=1,max=10"`
	TicketType string  `json:"ticket_type" validate:"required"`
}

// CreateAlbumRequest carries a single image: base64 payload or URL, the
// store does not care which.
type CreateAlbumRequest struct {
	GalleryID *int64 `json:"gallery_id" validate:"required"`
	ImageURL  string `json:"image_url" validate:"required,min=1"`
}

type UpdateAlbumRequest struct {
	GalleryID *int64  `json:"gallery_id"`
	ImageURL  *string `json:"image_url" validate:"omitempty,min=1"`
}

// Fields returns the partial-update column map, only including fields that
// were present in the request.
func (r UpdateAlbumRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.GalleryID != nil {
		fields["gallery_id"] = *r.GalleryID
	}
	if r.ImageURL != nil {
		fields["image_url"] = *r.ImageURL
	}
	return fields
}

type BulkCreateAlbumsRequest struct {
	GalleryID *int64   `json:"gallery_id" validate:"required"`
	Images    []string `json:"images" validate:"required,min=1,dive,min=1"`
}

// CreateConnectRequest is validated ad hoc in the handler (fullName and
// email only), matching the public form it backs.
type CreateConnectRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Country  string `json:"country"`
	City     string `json:"city"`
	Comment  string `json:"comment"`
}
