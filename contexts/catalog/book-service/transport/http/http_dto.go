package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateBookRequest struct {
	Title      string `json:"title"`
	Year       int    `json:"year"`
	NovelistID int64  `json:"novelist_id"`
}

// UpdateBookRequest carries a partial update; absent fields stay nil and
// leave the stored value unchanged.
type UpdateBookRequest struct {
	Title      *string `json:"title,omitempty"`
	Year       *int    `json:"year,omitempty"`
	NovelistID *int64  `json:"novelist_id,omitempty"`
}

type BookResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
	NovelistID int64  `json:"novelist_id"`
}

type BookListResponse struct {
	Books []BookResponse `json:"books"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
