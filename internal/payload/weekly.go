package payload

// WeeklyListing is the flat spine used by the weekly and fortnightly
// tribunal lists: no room/session nesting, just a sequence of dated
// sittings. The date-split rule derives one output section per unique
// sitting-start date.
type WeeklyListing struct {
	Document Document        `json:"document"`
	Venue    Venue           `json:"venue"`
	Sittings []WeeklySitting `json:"sittings"`
}

// WeeklySitting is one scheduled tribunal hearing in a weekly list.
type WeeklySitting struct {
	Start          string      `json:"sittingStart"`
	Duration       string      `json:"hearingLength"`
	CaseNumber     string      `json:"caseNumber"`
	CaseName       string      `json:"caseName"`
	HearingType    string      `json:"hearingType"`
	Venue          string      `json:"venue"`
	Channel        string      `json:"hearingChannel"`
	Judiciary      []Judiciary `json:"judiciary"`
	AdditionalInfo string      `json:"additionalInformation"`
}
