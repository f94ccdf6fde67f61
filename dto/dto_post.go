package dto

type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}
