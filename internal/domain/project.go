package domain

// Changes maps a field name to the value it held in the persisted baseline
// before the most recent import overwrote it.
type Changes map[string]any

// Project is one schedule row from an SD-09 import. Date milestones are kept
// as MM/DD/YYYY strings rather than time.Time: the source mixes true
// spreadsheet date serials with free-text entries ("TBD", "Q3"), and the
// display layer must show exactly what was entered.
type Project struct {
	ID int64 `json:"id"`

	// Team
	CostEstimator          string `json:"costEstimator"`
	CostEstimatorRequest   string `json:"costEstimatorRequest"`
	ADE                    string `json:"ade"`
	ProjectManager         string `json:"projectManager"`
	ProjectEngineer        string `json:"projectEngineer"`
	DesignEstimator        string `json:"designEstimator"`
	ConstructionContractor string `json:"constructionContractor"`

	// Identity and classification
	PMOID         string `json:"pmoId"`
	Order         string `json:"order"`
	MultipleOrder string `json:"multipleOrder"`
	BundleID      string `json:"bundleId"`
	PostEstimate  string `json:"postEstimate"`
	MAT           string `json:"mat"`
	ProjectName   string `json:"projectName"`
	WorkStream    string `json:"workStream"`
	WorkType      string `json:"workType"`

	// Location
	Station string `json:"station"`
	Line    string `json:"line"`
	MP1     string `json:"mp1"`
	MP2     string `json:"mp2"`
	City    string `json:"city"`
	County  string `json:"county"`

	// Plan years
	EngrPlanYear  int `json:"engrPlanYear"`
	ConstPlanYear int `json:"constPlanYear"`

	// Estimating milestones
	CommitmentDate   string `json:"commitmentDate"`
	Class5           string `json:"class5"`
	Class4           string `json:"class4"`
	Class3           string `json:"class3"`
	Class2           string `json:"class2"`
	NegotiatePrice   string `json:"negotiatePrice"`
	JEReadyToRoute   string `json:"jeReadyToRoute"`
	JEApproved       string `json:"jeApproved"`
	EstimateAnalysis string `json:"estimateAnalysis"`

	// Design milestones
	ThirtyPercentDesignReviewMeeting string `json:"thirtyPercentDesignReviewMeeting"`
	ThirtyPercentDesignAvailable     string `json:"thirtyPercentDesignAvailable"`
	SixtyPercentDesignReviewMeeting  string `json:"sixtyPercentDesignReviewMeeting"`
	SixtyPercentDesignAvailable      string `json:"sixtyPercentDesignAvailable"`
	NinetyPercentDesignReviewMeeting string `json:"ninetyPercentDesignReviewMeeting"`
	NinetyPercentDesignAvailable     string `json:"ninetyPercentDesignAvailable"`

	// Construction milestones
	IFC         string `json:"ifc"`
	NTP         string `json:"ntp"`
	MOB         string `json:"mob"`
	TieIn       string `json:"tieIn"`
	EDRO        string `json:"edro"`
	UnitCapture string `json:"unitCapture"`

	// Bookkeeping, maintained by the merge engine and the store. Never part
	// of field diffing.
	LastUpdated  string       `json:"last_updated,omitempty"`
	IsChanged    bool         `json:"is_changed,omitempty"`
	Changes      Changes      `json:"_changes,omitempty"`
	Version      int          `json:"version,omitempty"`
	DateCategory DateCategory `json:"dateCategory,omitempty"`
}

// Clone returns a deep copy. The Changes map is copied so callers can
// annotate the clone without mutating the original.
func (p *Project) Clone() *Project {
	c := *p
	if p.Changes != nil {
		c.Changes = make(Changes, len(p.Changes))
		for k, v := range p.Changes {
			c.Changes[k] = v
		}
	}
	return &c
}

// FieldChanged reports whether the named field was altered by the most
// recent merge, and returns the prior value if so.
func (p *Project) FieldChanged(name string) (any, bool) {
	if p.Changes == nil {
		return nil, false
	}
	v, ok := p.Changes[name]
	return v, ok
}
