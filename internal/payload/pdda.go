package payload

// PDDAListing is the spine used by crown lists sourced from the PDDA feed.
// Rooms hang directly off each court house and hold pre-flattened hearings
// rather than session/sitting nesting.
type PDDAListing struct {
	PublicationDate string           `json:"publicationDate"`
	ListDate        string           `json:"listDate"`
	CourtHouses     []PDDACourtHouse `json:"courtHouses"`
}

// PDDACourtHouse is one crown court building in a PDDA list.
type PDDACourtHouse struct {
	Name  string     `json:"courtHouseName"`
	Code  string     `json:"courtHouseCode"`
	Rooms []PDDARoom `json:"courtRooms"`
}

// PDDARoom is one room with its flattened hearing entries.
type PDDARoom struct {
	Name     string        `json:"courtRoomName"`
	Hearings []PDDAHearing `json:"hearings"`
}

// PDDAHearing is one pre-flattened crown hearing entry.
type PDDAHearing struct {
	Time            string `json:"sittingAt"`
	CaseNumber      string `json:"caseNumber"`
	DefendantName   string `json:"defendantName"`
	HearingType     string `json:"hearingType"`
	HearingNote     string `json:"hearingNote"`
	Prosecutor      string `json:"prosecutingAuthority"`
	JudgeName       string `json:"judgeName"`
	ReportingRestriction string `json:"reportingRestriction"`
}
