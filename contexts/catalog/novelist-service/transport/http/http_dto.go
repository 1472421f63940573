package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type NovelistRequest struct {
	Name string `json:"name"`
}

type NovelistResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type NovelistListResponse struct {
	Novelists []NovelistResponse `json:"novelists"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
