package domain

// FieldSpec is one entry in the typed field registry. The merge engine,
// normalizer, repository, and search all iterate Fields instead of reflecting
// over the struct.
//
// Name is the wire/JSON name, Label the spreadsheet header it is read from,
// Column the SQL column it is stored in. Order is a reserved word in SQL, so
// its column is order_number.
type FieldSpec struct {
	Name   string
	Label  string
	Column string
	Kind   FieldKind
	Get    func(p *Project) any
	Ptr    func(p *Project) any
}

// SetString stores a text or date value. Panics if called on a year field;
// the registry is fixed at compile time so that is a programming error.
func (f FieldSpec) SetString(p *Project, v string) {
	*f.Ptr(p).(*string) = v
}

// SetInt stores a plan-year value.
func (f FieldSpec) SetInt(p *Project, v int) {
	*f.Ptr(p).(*int) = v
}

func text(name, label, column string, ptr func(p *Project) *string) FieldSpec {
	return FieldSpec{
		Name: name, Label: label, Column: column, Kind: KindText,
		Get: func(p *Project) any { return *ptr(p) },
		Ptr: func(p *Project) any { return ptr(p) },
	}
}

func date(name, label, column string, ptr func(p *Project) *string) FieldSpec {
	f := text(name, label, column, ptr)
	f.Kind = KindDate
	return f
}

func year(name, label, column string, ptr func(p *Project) *int) FieldSpec {
	return FieldSpec{
		Name: name, Label: label, Column: column, Kind: KindYear,
		Get: func(p *Project) any { return *ptr(p) },
		Ptr: func(p *Project) any { return ptr(p) },
	}
}

// Fields lists every business field in display order. Bookkeeping fields
// (id, _changes, is_changed, last_updated, version, dateCategory) are
// deliberately absent: they are never diffed, searched, or imported.
var Fields = []FieldSpec{
	text("costEstimator", "Cost Estimator", "cost_estimator", func(p *Project) *string { return &p.CostEstimator }),
	text("costEstimatorRequest", "Cost Estimator Requested", "cost_estimator_request", func(p *Project) *string { return &p.CostEstimatorRequest }),
	text("ade", "ADE", "ade", func(p *Project) *string { return &p.ADE }),
	text("projectManager", "Project Manager", "project_manager", func(p *Project) *string { return &p.ProjectManager }),
	text("projectEngineer", "Project Engineer", "project_engineer", func(p *Project) *string { return &p.ProjectEngineer }),
	text("designEstimator", "Design Estimator", "design_estimator", func(p *Project) *string { return &p.DesignEstimator }),
	text("constructionContractor", "Construction Contractor", "construction_contractor", func(p *Project) *string { return &p.ConstructionContractor }),
	text("bundleId", "Bundle ID", "bundle_id", func(p *Project) *string { return &p.BundleID }),
	text("postEstimate", "Post Estimate", "post_estimate", func(p *Project) *string { return &p.PostEstimate }),
	text("pmoId", "PMO ID", "pmo_id", func(p *Project) *string { return &p.PMOID }),
	text("order", "Order", "order_number", func(p *Project) *string { return &p.Order }),
	text("multipleOrder", "Multiple Order", "multiple_order", func(p *Project) *string { return &p.MultipleOrder }),
	text("mat", "MAT", "mat", func(p *Project) *string { return &p.MAT }),
	text("projectName", "Project Name", "project_name", func(p *Project) *string { return &p.ProjectName }),
	text("workStream", "Work Stream", "work_stream", func(p *Project) *string { return &p.WorkStream }),
	text("workType", "Work Type", "work_type", func(p *Project) *string { return &p.WorkType }),
	year("engrPlanYear", "Engr Plan Year", "engr_plan_year", func(p *Project) *int { return &p.EngrPlanYear }),
	year("constPlanYear", "Construction Plan Year", "const_plan_year", func(p *Project) *int { return &p.ConstPlanYear }),
	date("commitmentDate", "Commitment Date", "commitment_date", func(p *Project) *string { return &p.CommitmentDate }),
	text("station", "Station", "station", func(p *Project) *string { return &p.Station }),
	text("line", "Line", "line", func(p *Project) *string { return &p.Line }),
	text("mp1", "MP1", "mp1", func(p *Project) *string { return &p.MP1 }),
	text("mp2", "MP2", "mp2", func(p *Project) *string { return &p.MP2 }),
	text("city", "City", "city", func(p *Project) *string { return &p.City }),
	text("county", "County", "county", func(p *Project) *string { return &p.County }),
	date("class5", "Class 5", "class5", func(p *Project) *string { return &p.Class5 }),
	date("class4", "Class 4", "class4", func(p *Project) *string { return &p.Class4 }),
	date("class3", "Class 3", "class3", func(p *Project) *string { return &p.Class3 }),
	date("class2", "Class 2", "class2", func(p *Project) *string { return &p.Class2 }),
	date("negotiatePrice", "Negotiate Price", "negotiate_price", func(p *Project) *string { return &p.NegotiatePrice }),
	date("jeReadyToRoute", "JE Ready to Route", "je_ready_to_route", func(p *Project) *string { return &p.JEReadyToRoute }),
	date("jeApproved", "JE Approved", "je_approved", func(p *Project) *string { return &p.JEApproved }),
	date("estimateAnalysis", "Estimate Analysis", "estimate_analysis", func(p *Project) *string { return &p.EstimateAnalysis }),
	date("thirtyPercentDesignReviewMeeting", "30% Design Review Meeting", "thirty_pct_design_review_meeting", func(p *Project) *string { return &p.ThirtyPercentDesignReviewMeeting }),
	date("thirtyPercentDesignAvailable", "30% Design Available", "thirty_pct_design_available", func(p *Project) *string { return &p.ThirtyPercentDesignAvailable }),
	date("sixtyPercentDesignReviewMeeting", "60% Design Review Meeting", "sixty_pct_design_review_meeting", func(p *Project) *string { return &p.SixtyPercentDesignReviewMeeting }),
	date("sixtyPercentDesignAvailable", "60% Design Available", "sixty_pct_design_available", func(p *Project) *string { return &p.SixtyPercentDesignAvailable }),
	date("ninetyPercentDesignReviewMeeting", "90% Design Review Meeting", "ninety_pct_design_review_meeting", func(p *Project) *string { return &p.NinetyPercentDesignReviewMeeting }),
	date("ninetyPercentDesignAvailable", "90% Design Available", "ninety_pct_design_available", func(p *Project) *string { return &p.NinetyPercentDesignAvailable }),
	date("ifc", "IFC", "ifc", func(p *Project) *string { return &p.IFC }),
	date("ntp", "NTP", "ntp", func(p *Project) *string { return &p.NTP }),
	date("mob", "MOB", "mob", func(p *Project) *string { return &p.MOB }),
	date("tieIn", "Tie-In", "tie_in", func(p *Project) *string { return &p.TieIn }),
	date("edro", "EDRO", "edro", func(p *Project) *string { return &p.EDRO }),
	date("unitCapture", "Unit Capture", "unit_capture", func(p *Project) *string { return &p.UnitCapture }),
}

var fieldsByName = func() map[string]FieldSpec {
	m := make(map[string]FieldSpec, len(Fields))
	for _, f := range Fields {
		m[f.Name] = f
	}
	return m
}()

// FieldByName looks up a registry entry by its wire name.
func FieldByName(name string) (FieldSpec, bool) {
	f, ok := fieldsByName[name]
	return f, ok
}

// DateFields returns the registry entries holding milestone dates.
func DateFields() []FieldSpec {
	var out []FieldSpec
	for _, f := range Fields {
		if f.Kind == KindDate {
			out = append(out, f)
		}
	}
	return out
}

// ShortLabels maps field names to the compact column headers used in table
// output. Fields not listed fall back to their full Label.
var ShortLabels = map[string]string{
	"costEstimator":                    "Cost Est.",
	"costEstimatorRequest":             "Cost Est. Req.",
	"projectManager":                   "PM",
	"projectEngineer":                  "Proj. Eng.",
	"designEstimator":                  "Design Est.",
	"constructionContractor":           "Contractor",
	"multipleOrder":                    "Multi Order",
	"postEstimate":                     "Post Est.",
	"projectName":                      "Project",
	"engrPlanYear":                     "Eng. Year",
	"constPlanYear":                    "Const. Year",
	"commitmentDate":                   "Commit Date",
	"negotiatePrice":                   "Neg. Price",
	"jeReadyToRoute":                   "JE Ready",
	"jeApproved":                       "JE Appr.",
	"estimateAnalysis":                 "Est. Analysis",
	"thirtyPercentDesignReviewMeeting": "30% Review",
	"thirtyPercentDesignAvailable":     "30% Design",
	"sixtyPercentDesignReviewMeeting":  "60% Review",
	"sixtyPercentDesignAvailable":      "60% Design",
	"ninetyPercentDesignReviewMeeting": "90% Review",
	"ninetyPercentDesignAvailable":     "90% Design",
	"tieIn":                            "Tie-in",
	"unitCapture":                      "Unit Cap.",
}

// ShortLabel returns the compact header for a field name.
func ShortLabel(name string) string {
	if l, ok := ShortLabels[name]; ok {
		return l
	}
	if f, ok := fieldsByName[name]; ok {
		return f.Label
	}
	return name
}
