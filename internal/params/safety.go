package params

type ClassifyRequest struct {
	Text string `json:"text" validate:"required"`
}

type ClassifyResponse struct {
	Label     int    `json:"label"`
	LabelName string `json:"label_name"`
}
