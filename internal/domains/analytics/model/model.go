package model

const EntityName = "analytics"

// Range selects the reporting window for the dashboard.
type Range string

const (
	RangeWeek     Range = "7d"
	RangeTenDays  Range = "10d"
	RangeMonth    Range = "1m"
	RangeQuarter  Range = "3m"
	RangeHalfYear Range = "6m"
	RangeYear     Range = "1y"
	RangeDefault        = RangeWeek
)

// Valid reports whether the range is one of the supported windows.
func (r Range) Valid() bool {
	switch r {
	case RangeWeek, RangeTenDays, RangeMonth, RangeQuarter, RangeHalfYear, RangeYear:
		return true
	default:
		return false
	}
}

// Summary totals the window.
type Summary struct {
	TotalAmount    float64 `json:"total_amount"`
	PaidBookings   int     `json:"paid_bookings"`
	NormalBookings int     `json:"normal_bookings"`
}

// ChartPoint is one day of revenue, split by paid and normal bookings.
type ChartPoint struct {
	Date         string  `json:"date"`
	TotalAmount  float64 `json:"total_amount"`
	PaidAmount   float64 `json:"paid_amount"`
	NormalAmount float64 `json:"normal_amount"`
	PaidCount    int     `json:"paid_count"`
	NormalCount  int     `json:"normal_count"`
}

// Row is one booking with its payment details for the report table.
type Row struct {
	BookingID            string   `json:"booking_id"`
	BookingDate          string   `json:"booking_date"`
	BookingStartTime     string   `json:"booking_start_time"`
	BookingStatus        string   `json:"booking_status"`
	AdvancePaid          bool     `json:"advance_paid"`
	TransactionAmount    *float64 `json:"transaction_amount"`
	RazorpayOrderID      *string  `json:"razorpay_order_id"`
	RazorpayPaymentID    *string  `json:"razorpay_payment_id"`
	TransactionID        *string  `json:"transaction_id"`
	UserName             string   `json:"user_name"`
	UserMobileNo         string   `json:"user_mobile_no"`
	PaymentMode          *string  `json:"payment_mode"`
	TransactionStatus    *string  `json:"transaction_status"`
	TransactionCreatedAt *string  `json:"transaction_created_at"`
}

// Report is the full analytics payload, passed through unaggregated.
type Report struct {
	Summary Summary      `json:"summary"`
	Chart   []ChartPoint `json:"chart"`
	Rows    []Row        `json:"rows"`
}
