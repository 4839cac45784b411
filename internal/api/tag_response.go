package api

// swagger:model api.TagResponse
type TagResponse struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Dinner"`
}
