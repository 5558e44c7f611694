package request

type AdvanceStatusRequest struct {
	Status string `json:"status"`
}
