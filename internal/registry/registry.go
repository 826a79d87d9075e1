// Package registry maps each supported list type onto its strategy pair:
// one document converter plus an optional summary extractor. The table is
// built once at process start and never changes afterwards, so it is safe
// to share across concurrent renders without locking. Lookups for unknown
// list types report absence as a normal outcome, never an error.
package registry

import (
	"sort"

	"listpub/internal/lists"
	"listpub/internal/lists/civil"
	"listpub/internal/lists/crime"
	"listpub/internal/lists/opa"
	"listpub/internal/lists/sjp"
	"listpub/internal/lists/tribunal"
	"listpub/internal/listtype"
)

// Strategy is the converter pair registered for one list type. Summary is
// nil for list types whose summary strategy is intentionally absent.
type Strategy struct {
	Converter lists.DocumentConverter
	Summary   lists.SummaryExtractor
}

// Registry is the immutable list-type dispatch table.
type Registry struct {
	strategies map[listtype.ListType]Strategy
}

// New builds the full strategy table.
func New() *Registry {
	sjpPublic := sjp.NewList(sjp.Public)
	sjpPress := sjp.NewList(sjp.Press)
	opaPress := opa.NewList(opa.Press)
	opaPublic := opa.NewList(opa.Public)
	opaResults := opa.NewList(opa.Results)

	strategies := map[listtype.ListType]Strategy{
		// The SJP and OPA public lists deliberately have no summary
		// strategy; their converters still produce documents and tabular
		// exports.
		listtype.SJPPublicList: {Converter: sjpPublic},
		listtype.SJPPressList:  {Converter: sjpPress, Summary: sjpPress},

		listtype.CrownDailyList:  pair(crime.NewCrownList(crime.CrownDaily)),
		listtype.CrownFirmList:   pair(crime.NewCrownList(crime.CrownFirm)),
		listtype.CrownWarnedList: pair(crime.NewCrownList(crime.CrownWarned)),

		listtype.PDDACrownDailyList: pair(crime.NewPDDACrownDailyList()),

		listtype.MagistratesPublicList:   pair(crime.NewMagistratesPublicList()),
		listtype.MagistratesStandardList: pair(crime.NewMagistratesStandardList()),

		listtype.CivilDailyCauseList:          pair(civil.NewDailyCauseList(civil.Civil)),
		listtype.FamilyDailyCauseList:         pair(civil.NewDailyCauseList(civil.Family)),
		listtype.CivilAndFamilyDailyCauseList: pair(civil.NewDailyCauseList(civil.Mixed)),
		listtype.COPDailyCauseList:            pair(civil.NewDailyCauseList(civil.COP)),

		listtype.ETDailyList:       pair(tribunal.NewDailyList(tribunal.EmploymentDaily)),
		listtype.IACDailyList:      pair(tribunal.NewDailyList(tribunal.ImmigrationDaily)),
		listtype.SSCSDailyList:     pair(tribunal.NewDailyList(tribunal.SocialSecurityDaily)),
		listtype.CareStandardsList: pair(tribunal.NewDailyList(tribunal.CareStandardsDaily)),
		listtype.PrimaryHealthList: pair(tribunal.NewDailyList(tribunal.PrimaryHealthDaily)),

		listtype.ETFortnightlyPressList:  pair(tribunal.NewWeeklyList(tribunal.EmploymentFortnightly)),
		listtype.CSTWeeklyHearingList:    pair(tribunal.NewWeeklyList(tribunal.CareStandardsWeekly)),
		listtype.PHTWeeklyHearingList:    pair(tribunal.NewWeeklyList(tribunal.PrimaryHealthWeekly)),
		listtype.GRCWeeklyHearingList:    pair(tribunal.NewWeeklyList(tribunal.GeneralRegulatoryWeekly)),
		listtype.WPAFCCWeeklyHearingList: pair(tribunal.NewWeeklyList(tribunal.WarPensionsWeekly)),

		listtype.UTIACStatutoryAppealsDailyHearingList: pair(tribunal.NewUpperDailyList(tribunal.UpperIACStatutoryAppeals)),
		listtype.UTIACJudicialReviewDailyHearingList:   pair(tribunal.NewUpperDailyList(tribunal.UpperIACJudicialReview)),
		listtype.UTLCDailyHearingList:                  pair(tribunal.NewUpperDailyList(tribunal.UpperLands)),
		listtype.UTTCCDailyHearingList:                 pair(tribunal.NewUpperDailyList(tribunal.UpperTaxAndChancery)),
		listtype.UTAACDailyHearingList:                 pair(tribunal.NewUpperDailyList(tribunal.UpperAdministrativeAppeals)),

		listtype.OPAPressList:  {Converter: opaPress, Summary: opaPress},
		listtype.OPAPublicList: {Converter: opaPublic},
		listtype.OPAResults:    {Converter: opaResults, Summary: opaResults},
	}
	return &Registry{strategies: strategies}
}

// pair registers a converter that also implements the summary contract.
func pair[T interface {
	lists.DocumentConverter
	lists.SummaryExtractor
}](converter T) Strategy {
	return Strategy{Converter: converter, Summary: converter}
}

// Lookup returns the strategy pair for a list type. The second return is
// false for unsupported list types; callers skip generation silently.
func (r *Registry) Lookup(lt listtype.ListType) (Strategy, bool) {
	strategy, ok := r.strategies[lt]
	return strategy, ok
}

// Types returns the registered list types in lexical order.
func (r *Registry) Types() []listtype.ListType {
	types := make([]listtype.ListType, 0, len(r.strategies))
	for lt := range r.strategies {
		types = append(types, lt)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
