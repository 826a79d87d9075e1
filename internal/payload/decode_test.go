package payload

import (
	"errors"
	"testing"
)

func TestValid(t *testing.T) {
	if !Valid([]byte(`{"document":{}}`)) {
		t.Error("Valid(object) = false")
	}
	if Valid([]byte(`{"document":`)) {
		t.Error("Valid(truncated) = true")
	}
	if Valid(nil) {
		t.Error("Valid(nil) = true")
	}
}

func TestDecodeOptionalFieldsDefaultBlank(t *testing.T) {
	raw := []byte(`{
		"document": {"publicationDate": "2026-02-13T18:00:00Z"},
		"venue": {"venueName": "Leeds Combined Court"},
		"courtLists": [{
			"courtHouse": {
				"courtHouseName": "LEEDS",
				"courtRoom": [{
					"courtRoomName": "Courtroom 1",
					"session": [{
						"sittings": [{
							"sittingStart": "2026-02-14T10:00:00Z",
							"hearing": [{
								"case": [{"caseNumber": "T2026001"}]
							}]
						}]
					}]
				}]
			}
		}]
	}`)

	listing, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	kase := listing.CourtLists[0].CourtHouse.Rooms[0].Sessions[0].Sittings[0].Hearings[0].Cases[0]
	if kase.Number != "T2026001" {
		t.Errorf("caseNumber = %q", kase.Number)
	}
	if kase.SequenceIndicator != "" || kase.Name != "" || kase.ListingNotes != "" {
		t.Errorf("absent optional fields must decode to blank, got %+v", kase)
	}
	if len(kase.Parties) != 0 || len(kase.Offences) != 0 {
		t.Errorf("absent collections must decode empty")
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte(`{"document":`))
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("Decode(truncated) err = %v, want ErrMalformed", err)
	}
}

func TestDecodeWeekly(t *testing.T) {
	raw := []byte(`{
		"venue": {"venueName": "Employment Tribunal"},
		"sittings": [
			{"sittingStart": "2026-02-16T10:00:00Z", "caseNumber": "1800001/2026"},
			{"sittingStart": "2026-02-17T10:00:00Z", "caseNumber": "1800002/2026", "hearingChannel": "Video"}
		]
	}`)

	listing, err := DecodeWeekly(raw)
	if err != nil {
		t.Fatalf("DecodeWeekly: %v", err)
	}
	if len(listing.Sittings) != 2 {
		t.Fatalf("sittings = %d, want 2", len(listing.Sittings))
	}
	if listing.Sittings[0].Channel != "" {
		t.Errorf("absent channel should be blank, got %q", listing.Sittings[0].Channel)
	}
}

func TestDecodeWeeklyMalformed(t *testing.T) {
	if _, err := DecodeWeekly([]byte(`[`)); !errors.Is(err, ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed", err)
	}
}

func TestDecodePDDA(t *testing.T) {
	raw := []byte(`{
		"courtHouses": [{
			"courtHouseName": "SNARESBROOK",
			"courtRooms": [{
				"courtRoomName": "Court 1",
				"hearings": [{"caseNumber": "T2026100", "defendantName": "Smith, John"}]
			}]
		}]
	}`)

	listing, err := DecodePDDA(raw)
	if err != nil {
		t.Fatalf("DecodePDDA: %v", err)
	}
	if len(listing.CourtHouses) != 1 {
		t.Fatalf("courtHouses = %d", len(listing.CourtHouses))
	}
}
