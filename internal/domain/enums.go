package domain

type EntryType string

const (
	EntryVisit   EntryType = "visit"
	EntryTransit EntryType = "transit"
	EntryMeetup  EntryType = "meetup"
	EntrySplit   EntryType = "split"
)

// ValidEntryTypes is the canonical set of accepted entry type strings.
var ValidEntryTypes = map[string]bool{
	"visit": true, "transit": true, "meetup": true, "split": true,
}

type TravelMode string

const (
	ModeTrain TravelMode = "TRAIN"
	ModeWalk  TravelMode = "WALK"
	ModeTaxi  TravelMode = "TAXI"
	ModeBus   TravelMode = "BUS"
)

type WarningLevel string

const (
	WarningNormal   WarningLevel = "normal"
	WarningCaution  WarningLevel = "caution"
	WarningCritical WarningLevel = "critical"
)
