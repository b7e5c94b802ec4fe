package domain

// Location is a fixed place a traveller can be at or navigate to.
// Values are immutable once constructed.
type Location struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Address         string `json:"address,omitempty"`
	JapaneseName    string `json:"japaneseName,omitempty"`
	JapaneseAddress string `json:"japaneseAddress,omitempty"`
}

// PreferredAddress returns the most specific address available for
// map queries: localized address, then generic address, then name.
func (l Location) PreferredAddress() string {
	return CoalesceStr(l.JapaneseAddress, l.Address, l.Name)
}
