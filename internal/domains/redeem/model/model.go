package model

import "time"

const EntityName = "redeem"

// State filters redemption queries. A redemption is initiated until its
// code is confirmed, then confirmed forever.
type State string

const (
	StateInitiated State = "initiated"
	StateConfirmed State = "confirmed"
)

// Redemption mirrors the upstream record. The redeem code itself never
// appears here; the upstream relays it to the customer out-of-band and
// compares it server-side on confirmation.
type Redemption struct {
	RedeemID      string     `json:"redeem_id"`
	UserID        string     `json:"user_id"`
	UserName      string     `json:"user_name"`
	UserMobileNo  string     `json:"user_mobile_no"`
	ItemID        string     `json:"item_id"`
	ItemName      string     `json:"item_name"`
	IsRedeemed    bool       `json:"is_redeemed"`
	InitiaterRole string     `json:"initiater_role"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

// Partition splits redemptions into their two states. Derived from
// is_redeemed only, never queried separately.
func Partition(redemptions []Redemption) (initiated, confirmed []Redemption) {
	for _, r := range redemptions {
		if r.IsRedeemed {
			confirmed = append(confirmed, r)
		} else {
			initiated = append(initiated, r)
		}
	}

	return initiated, confirmed
}
