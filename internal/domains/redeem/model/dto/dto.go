package dto

import (
	"krown/internal/domains/redeem/model"
)

// InitiateRequest starts a redemption for a customer at the counter. The
// mobile number accepts any common formatting; it is normalized before the
// upstream ever sees it.
type InitiateRequest struct {
	UserMobileNo string `json:"user_mobile_no" validate:"required"`
	ItemID       string `json:"item_id" validate:"required"`
}

// InitiatePayload is the upstream create contract.
type InitiatePayload struct {
	CafeID     string `json:"cafeId"`
	UserMobile string `json:"userMobile"`
	ItemID     string `json:"itemId"`
}

// ConfirmRequest completes a redemption with the code the customer
// received.
type ConfirmRequest struct {
	RedeemID   string `json:"redeem_id" validate:"required"`
	RedeemCode string `json:"redeem_code" validate:"required"`
}

// ConfirmPayload is the upstream confirm contract.
type ConfirmPayload struct {
	RedeemID   string `json:"redeemId"`
	RedeemCode string `json:"redeemCode"`
}

// ForUserParams look up a customer's redemptions at a café, optionally
// narrowed to one state.
type ForUserParams struct {
	UserMobileNo string      `validate:"required"`
	State        model.State `validate:"omitempty,oneof=initiated confirmed"`
}

// RedemptionsResponse is the upstream list payload.
type RedemptionsResponse struct {
	Redemptions []model.Redemption `json:"redeems"`
}

// PartitionedResponse is the dashboard view, split by state.
type PartitionedResponse struct {
	Initiated []model.Redemption `json:"initiated"`
	Confirmed []model.Redemption `json:"confirmed"`
}
