package models

// Requests for the analysis HTTP endpoints. Defined in domain for consistency and reuse.

// RangeParams are the shared symbol/range query parameters. Start and
// end are YYYY-MM-DD dates; when both are present they win over period.
type RangeParams struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required,max=12"`
	Period string `query:"period" json:"period" default:"1y" validate:"omitempty,oneof=1d 5d 1mo 3mo 6mo 1y 2y 5y 10y ytd max"`
	Start  string `query:"start" json:"start" validate:"omitempty,datetime=2006-01-02"`
	End    string `query:"end" json:"end" validate:"omitempty,datetime=2006-01-02"`
}

type AnalysisRequest struct {
	RangeParams
}

type IndicatorsRequest struct {
	RangeParams
}

type LevelsRequest struct {
	RangeParams
	Window int `query:"window" json:"window" default:"20" validate:"gte=2,lte=250"`
}

type OutliersRequest struct {
	RangeParams
	Column    string  `query:"column" json:"column" default:"close" validate:"oneof=open high low close volume"`
	Threshold float64 `query:"threshold" json:"threshold" default:"3.0" validate:"gt=0"`
}

type ResampleRequest struct {
	RangeParams
	Freq string `query:"freq" json:"freq" default:"W" validate:"oneof=W M"`
}
