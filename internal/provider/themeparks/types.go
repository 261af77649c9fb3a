package themeparks

// Queue sub-type keys as they appear in provider payloads.
const (
	QueueStandby        = "STANDBY"
	QueueSingleRider    = "SINGLE_RIDER"
	QueuePaidReturnTime = "PAID_RETURN_TIME"
	QueueReturnTime     = "RETURN_TIME"
	QueueBoardingGroup  = "BOARDING_GROUP"
)

// StateAvailable is the provider's state value for an open return-time or
// boarding-group window.
const StateAvailable = "AVAILABLE"

// RawAttraction is one attraction's live status exactly as the provider
// reports it. Fields are pointers where the provider omits them freely;
// normalization owns all defaulting.
type RawAttraction struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Status string              `json:"status"`
	Queue  map[string]RawQueue `json:"queue"`
}

// RawQueue is one queue sub-type block. Which fields are populated depends
// on the sub-type key.
type RawQueue struct {
	WaitTime *int      `json:"waitTime,omitempty"`
	State    string    `json:"state,omitempty"`
	Price    *RawPrice `json:"price,omitempty"`

	// Return-time windows (PAID_RETURN_TIME / RETURN_TIME)
	ReturnStart string `json:"returnStart,omitempty"`
	ReturnEnd   string `json:"returnEnd,omitempty"`

	// Boarding groups (BOARDING_GROUP)
	CurrentGroupStart *int   `json:"currentGroupStart,omitempty"`
	CurrentGroupEnd   *int   `json:"currentGroupEnd,omitempty"`
	EstimatedWait     *int   `json:"estimatedWait,omitempty"`
	AllocationStatus  string `json:"allocationStatus,omitempty"`
}

// RawPrice is a provider price block (amount in minor units).
type RawPrice struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}
