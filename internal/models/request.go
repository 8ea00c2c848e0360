package models

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// ListOrdersFilter narrows a listing. Zero values mean "no filter".
type ListOrdersFilter struct {
	Status OrderStatus
	Search string
}
