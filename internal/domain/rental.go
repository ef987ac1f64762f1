package domain

type RentalStatus string

const (
	RentalStatusRented   RentalStatus = "RENTED"
	RentalStatusReturned RentalStatus = "RETURNED"
)

type Rental struct {
	ID            string       `json:"rental_id"`
	ToolID        string       `json:"tool_id"`
	UserID        int          `json:"user_id"`
	UserName      string       `json:"user_name"`
	UserEmail     string       `json:"user_email"`
	RentDays      int          `json:"rent_days"`
	TotalPrice    float64      `json:"total_price"`
	RentalDate    string       `json:"rental_date"`
	Status        RentalStatus `json:"status"`
	ReturnDate    *string      `json:"return_date,omitempty"`
	AfterImageRef string       `json:"after_image_ref,omitempty"`
}
