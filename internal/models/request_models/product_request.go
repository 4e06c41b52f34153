package request_models

type ProductRequest struct {
	Title       string   `json:"title" binding:"notblank"`
	Description string   `json:"description" binding:"notblank"`
	NewPrice    *float64 `json:"newPrice" binding:"required"`
	OldPrice    *float64 `json:"oldPrice"`
	CoverImage  string   `json:"coverImage" binding:"notblank"`
	Category    string   `json:"category" binding:"notblank"`
}
