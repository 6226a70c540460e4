package assistant

// ArtInfoQueryInput is the input for the artInfoQuery template.
type ArtInfoQueryInput struct {
	ArtworkDescription string `json:"artworkDescription"` // Description of the artwork being displayed
	UserQuery          string `json:"userQuery"`          // The visitor's question about the artwork
}

// ArtInfoQueryOutput is the structured answer to an art question.
type ArtInfoQueryOutput struct {
	Answer string `json:"answer"`
}

// ContextualDisplayInput is the input for the contextualArtDisplay template.
type ContextualDisplayInput struct {
	ArtworkDescription string `json:"artworkDescription"`
	UserQuery          string `json:"userQuery"`
}

// ContextualDisplayOutput carries the rewritten display description.
type ContextualDisplayOutput struct {
	ModifiedDisplay string `json:"modifiedDisplay"`
}

// PlaneDimensions are the display dimensions supplied with an upload.
// Planes are flat; there is no depth.
type PlaneDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ImageToPlaneInput is the input for the imageToPlane template.
// ImageDataURI is a data: URI; the template attaches it as a media part.
type ImageToPlaneInput struct {
	Title        string          `json:"title"`
	Artist       string          `json:"artist"`
	Description  string          `json:"description"`
	Dimensions   PlaneDimensions `json:"dimensions"`
	ImageDataURI string          `json:"imageDataUri"`
}

// ImageToPlaneOutput is the artwork-shaped result of an image upload.
// Deliberately no identifier field: the model is never trusted to mint ids.
type ImageToPlaneOutput struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Kind        string `json:"type"` // always "plane"
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}
