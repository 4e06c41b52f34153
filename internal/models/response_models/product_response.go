package response_models

// ProductResponse uses the storefront's book shape.
type ProductResponse struct {
	ID          uint    `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	NewPrice    float64 `json:"newPrice"`
	OldPrice    float64 `json:"oldPrice"`
	CoverImage  string  `json:"coverImage"`
	Category    string  `json:"category"`
}

type UploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
