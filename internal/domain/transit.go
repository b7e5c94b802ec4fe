package domain

// TransitInfo describes one transit leg: how to get from the previous
// stop to wherever this leg ends. Attached only to transit entries.
type TransitInfo struct {
	Mode         TravelMode `json:"mode"`
	Duration     string     `json:"duration"`
	LineName     string     `json:"lineName,omitempty"`
	Direction    string     `json:"direction,omitempty"`
	Cost         string     `json:"cost,omitempty"`
	Instructions string     `json:"instructions,omitempty"`
	LastTrain    string     `json:"lastTrain,omitempty"`
}
