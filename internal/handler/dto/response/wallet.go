package response

import (
	"time"

	"store-offers-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BalanceResponse struct {
	Currency  string    `json:"currency"`
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	res := &BalanceResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromBalanceViews(views []*queries.BalanceView) []*BalanceResponse {
	res := make([]*BalanceResponse, len(views))
	for i, v := range views {
		res[i] = FromBalanceView(v)
	}
	return res
}
