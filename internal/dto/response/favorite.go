package response

type FavoriteCheckResponse struct {
	IsFavorite bool `json:"is_favorite"`
}
