// Package listtype defines the closed set of supported hearing-list
// identifiers and the per-type publication attributes the rendering
// pipeline needs (friendly display names and whether a Welsh-language
// document accompanies the English one).
package listtype

import (
	"sort"
	"strings"
)

// ListType identifies one supported hearing-list shape.
type ListType string

const (
	SJPPublicList ListType = "SJP_PUBLIC_LIST"
	SJPPressList  ListType = "SJP_PRESS_LIST"

	CrownDailyList  ListType = "CROWN_DAILY_LIST"
	CrownFirmList   ListType = "CROWN_FIRM_LIST"
	CrownWarnedList ListType = "CROWN_WARNED_LIST"

	PDDACrownDailyList ListType = "PDDA_CROWN_DAILY_LIST"

	MagistratesPublicList   ListType = "MAGISTRATES_PUBLIC_LIST"
	MagistratesStandardList ListType = "MAGISTRATES_STANDARD_LIST"

	CivilDailyCauseList          ListType = "CIVIL_DAILY_CAUSE_LIST"
	FamilyDailyCauseList         ListType = "FAMILY_DAILY_CAUSE_LIST"
	CivilAndFamilyDailyCauseList ListType = "CIVIL_AND_FAMILY_DAILY_CAUSE_LIST"
	COPDailyCauseList            ListType = "COP_DAILY_CAUSE_LIST"

	ETDailyList        ListType = "ET_DAILY_LIST"
	IACDailyList       ListType = "IAC_DAILY_LIST"
	SSCSDailyList      ListType = "SSCS_DAILY_LIST"
	CareStandardsList  ListType = "CARE_STANDARDS_LIST"
	PrimaryHealthList  ListType = "PRIMARY_HEALTH_LIST"

	ETFortnightlyPressList ListType = "ET_FORTNIGHTLY_PRESS_LIST"
	CSTWeeklyHearingList   ListType = "CST_WEEKLY_HEARING_LIST"
	PHTWeeklyHearingList   ListType = "PHT_WEEKLY_HEARING_LIST"
	GRCWeeklyHearingList   ListType = "GRC_WEEKLY_HEARING_LIST"
	WPAFCCWeeklyHearingList ListType = "WPAFCC_WEEKLY_HEARING_LIST"

	UTIACStatutoryAppealsDailyHearingList ListType = "UT_IAC_STATUTORY_APPEALS_DAILY_HEARING_LIST"
	UTIACJudicialReviewDailyHearingList   ListType = "UT_IAC_JUDICIAL_REVIEW_DAILY_HEARING_LIST"
	UTLCDailyHearingList                  ListType = "UT_LC_DAILY_HEARING_LIST"
	UTTCCDailyHearingList                 ListType = "UT_T_AND_CC_DAILY_HEARING_LIST"
	UTAACDailyHearingList                 ListType = "UT_AAC_DAILY_HEARING_LIST"

	OPAPressList  ListType = "OPA_PRESS_LIST"
	OPAPublicList ListType = "OPA_PUBLIC_LIST"
	OPAResults    ListType = "OPA_RESULTS"
)

type attributes struct {
	friendly string
	welsh    bool
}

var catalogue = map[ListType]attributes{
	SJPPublicList: {"Single Justice Procedure Public List", true},
	SJPPressList:  {"Single Justice Procedure Press List", true},

	CrownDailyList:  {"Crown Daily List", false},
	CrownFirmList:   {"Crown Firm List", false},
	CrownWarnedList: {"Crown Warned List", false},

	PDDACrownDailyList: {"Crown Daily List (PDDA)", false},

	MagistratesPublicList:   {"Magistrates Public List", false},
	MagistratesStandardList: {"Magistrates Standard List", false},

	CivilDailyCauseList:          {"Civil Daily Cause List", false},
	FamilyDailyCauseList:         {"Family Daily Cause List", true},
	CivilAndFamilyDailyCauseList: {"Civil and Family Daily Cause List", true},
	COPDailyCauseList:            {"Court of Protection Daily Cause List", true},

	ETDailyList:       {"Employment Tribunal Daily List", false},
	IACDailyList:      {"Immigration and Asylum Chamber Daily List", false},
	SSCSDailyList:     {"Social Security and Child Support Daily List", false},
	CareStandardsList: {"Care Standards Tribunal Hearing List", false},
	PrimaryHealthList: {"Primary Health Tribunal Hearing List", false},

	ETFortnightlyPressList:  {"Employment Tribunal Fortnightly Press List", false},
	CSTWeeklyHearingList:    {"Care Standards Tribunal Weekly Hearing List", false},
	PHTWeeklyHearingList:    {"Primary Health Tribunal Weekly Hearing List", false},
	GRCWeeklyHearingList:    {"General Regulatory Chamber Weekly Hearing List", false},
	WPAFCCWeeklyHearingList: {"War Pensions and Armed Forces Compensation Chamber Weekly Hearing List", false},

	UTIACStatutoryAppealsDailyHearingList: {"Upper Tribunal (IAC) Statutory Appeals Daily Hearing List", false},
	UTIACJudicialReviewDailyHearingList:   {"Upper Tribunal (IAC) Judicial Review Daily Hearing List", false},
	UTLCDailyHearingList:                  {"Upper Tribunal (Lands Chamber) Daily Hearing List", false},
	UTTCCDailyHearingList:                 {"Upper Tribunal (Tax and Chancery Chamber) Daily Hearing List", false},
	UTAACDailyHearingList:                 {"Upper Tribunal (Administrative Appeals Chamber) Daily Hearing List", false},

	OPAPressList:  {"Online Plea and Allocation Press List", false},
	OPAPublicList: {"Online Plea and Allocation Public List", false},
	OPAResults:    {"Online Plea and Allocation Results", false},
}

// Parse maps an identifier string onto a known list type. The second return
// is false for identifiers outside the supported set; callers treat that as
// a normal outcome, not an error.
func Parse(value string) (ListType, bool) {
	lt := ListType(strings.ToUpper(strings.TrimSpace(value)))
	_, ok := catalogue[lt]
	return lt, ok
}

// Known reports whether the list type belongs to the supported set.
func (lt ListType) Known() bool {
	_, ok := catalogue[lt]
	return ok
}

// FriendlyName returns the human-readable list title used in documents and
// CLI output. Unknown types fall back to the raw identifier.
func (lt ListType) FriendlyName() string {
	if attrs, ok := catalogue[lt]; ok {
		return attrs.friendly
	}
	return string(lt)
}

// WelshDocument reports whether publications of this list type carry a
// Welsh-language document alongside the English one.
func (lt ListType) WelshDocument() bool {
	return catalogue[lt].welsh
}

// All returns every supported list type in lexical order.
func All() []ListType {
	types := make([]ListType, 0, len(catalogue))
	for lt := range catalogue {
		types = append(types, lt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
