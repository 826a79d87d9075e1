// Package payload decodes raw listing payloads into typed structures.
//
// Decoding happens once, up front: every optional field decodes to its zero
// value, so downstream traversal code works with plain strings and never
// probes for presence. Each list-shape family owns exactly one traversal
// over exactly one of the spines defined here.
package payload

// Listing is the common spine shared by most list shapes:
// courtLists → courtHouse → courtRoom → session → sittings → hearing →
// case → party, with offences nested under a case or a party.
type Listing struct {
	Document   Document    `json:"document"`
	Venue      Venue       `json:"venue"`
	CourtLists []CourtList `json:"courtLists"`
}

// Document carries publication-level fields.
type Document struct {
	PublicationDate string `json:"publicationDate"`
	Version         string `json:"version"`
}

// Venue describes the publishing venue.
type Venue struct {
	Name    string  `json:"venueName"`
	Address Address `json:"venueAddress"`
	Contact Contact `json:"venueContact"`
}

// Contact holds venue contact details.
type Contact struct {
	Email     string `json:"venueEmail"`
	Telephone string `json:"venueTelephone"`
}

// Address is a postal address; any element may be blank.
type Address struct {
	Line     []string `json:"line"`
	Town     string   `json:"town"`
	County   string   `json:"county"`
	PostCode string   `json:"postCode"`
}

// CourtList is the top-level grouping of the common spine.
type CourtList struct {
	CourtHouse CourtHouse `json:"courtHouse"`
}

// CourtHouse is a court building with its rooms.
type CourtHouse struct {
	Name    string      `json:"courtHouseName"`
	Address Address     `json:"courtHouseAddress"`
	Rooms   []CourtRoom `json:"courtRoom"`
}

// CourtRoom is one room (or an unallocated placeholder) within a court house.
type CourtRoom struct {
	Name     string    `json:"courtRoomName"`
	Sessions []Session `json:"session"`
}

// Session is a judicial session within a room.
type Session struct {
	Channel   []string    `json:"sessionChannel"`
	Judiciary []Judiciary `json:"judiciary"`
	Sittings  []Sitting   `json:"sittings"`
}

// Judiciary is one judicial office holder attached to a session or sitting.
type Judiciary struct {
	Title       string `json:"johTitle"`
	KnownAs     string `json:"johKnownAs"`
	IsPresiding bool   `json:"isPresiding"`
}

// Sitting is a scheduled block of hearings.
type Sitting struct {
	Start     string      `json:"sittingStart"`
	End       string      `json:"sittingEnd"`
	Channel   []string    `json:"channel"`
	Judiciary []Judiciary `json:"judiciary"`
	Hearings  []Hearing   `json:"hearing"`
}

// Hearing groups the cases heard together in a sitting. Some shapes attach
// parties at hearing level rather than case level.
type Hearing struct {
	Type    string  `json:"hearingType"`
	Cases   []Case  `json:"case"`
	Parties []Party `json:"party"`
}

// Case is a single case within a hearing.
type Case struct {
	Number            string     `json:"caseNumber"`
	URN               string     `json:"caseUrn"`
	Name              string     `json:"caseName"`
	Type              string     `json:"caseType"`
	SequenceIndicator string     `json:"caseSequenceIndicator"`
	LinkedCases       []CaseLink `json:"caseLinkedCases"`
	ListingNotes      string     `json:"listingNotes"`
	ConvictionDate    string     `json:"convictionDate"`
	AdjournedDate     string     `json:"adjournedDate"`
	Parties           []Party    `json:"party"`
	Offences          []Offence  `json:"offence"`
	ReportingRestrictions []string `json:"reportingRestrictionDetail"`
}

// CaseLink references a case linked to this one.
type CaseLink struct {
	CaseID string `json:"caseId"`
}

// Party is a participant in a case, either an individual or an organisation.
type Party struct {
	Role         string        `json:"partyRole"`
	Individual   *Individual   `json:"individualDetails"`
	Organisation *Organisation `json:"organisationDetails"`
	Offences     []Offence     `json:"offence"`
}

// Individual holds the name details of an individual party. A non-blank
// MaskedName replaces the formatted real name wholesale.
type Individual struct {
	Title      string  `json:"title"`
	Forenames  string  `json:"individualForenames"`
	MiddleName string  `json:"individualMiddleName"`
	Surname    string  `json:"individualSurname"`
	MaskedName string  `json:"maskedName"`
	Gender     string  `json:"gender"`
	InCustody  bool    `json:"inCustody"`
	DateOfBirth string `json:"dateOfBirth"`
	Age        int     `json:"age"`
	Address    Address `json:"address"`
}

// Organisation holds the details of an organisation party.
type Organisation struct {
	Name    string  `json:"organisationName"`
	Address Address `json:"organisationAddress"`
}

// Offence is one charged offence, nested under a case or a party. The plea
// and decision fields are populated only by the online-plea shapes.
type Offence struct {
	Title        string `json:"offenceTitle"`
	Section      string `json:"offenceSection"`
	Wording      string `json:"offenceWording"`
	Plea         string `json:"plea"`
	PleaDate     string `json:"pleaDate"`
	Decision     string `json:"decision"`
	DecisionDate string `json:"decisionDate"`
	ReportingRestriction bool `json:"reportingRestriction"`
}
